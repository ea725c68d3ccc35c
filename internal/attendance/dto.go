package attendance

import (
	"strings"
	"time"

	errors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
)

// MarkAttendanceDTO is the POST /attendance payload.
type MarkAttendanceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (dto *MarkAttendanceDTO) Normalize() {
	dto.EmployeeID = strings.TrimSpace(dto.EmployeeID)
	dto.Date = strings.TrimSpace(dto.Date)
	dto.Status = strings.TrimSpace(dto.Status)
}

// Filter narrows GET /attendance. Zero values match everything.
type Filter struct {
	EmployeeID string
	Status     string
	From       *time.Time
	To         *time.Time
}

// FilterQuery is the raw query string form of Filter.
type FilterQuery struct {
	EmployeeID string
	Status     string
	From       string
	To         string
}

func (q FilterQuery) Parse() (Filter, *errors.AppError) {
	f := Filter{
		EmployeeID: strings.TrimSpace(q.EmployeeID),
		Status:     strings.TrimSpace(q.Status),
	}

	if f.Status != "" && f.Status != StatusPresent && f.Status != StatusAbsent {
		return Filter{}, errors.ErrInvalidStatus
	}

	for _, bound := range []struct {
		raw string
		dst **time.Time
	}{{q.From, &f.From}, {q.To, &f.To}} {
		if strings.TrimSpace(bound.raw) == "" {
			continue
		}
		d, err := validation.ParseDate(bound.raw)
		if err != nil {
			return Filter{}, errors.ErrInvalidDate
		}
		*bound.dst = &d
	}

	return f, nil
}
