package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeEmployeeCreated  = "employee.created"
	EventTypeEmployeeDeleted  = "employee.deleted"
	EventTypeAttendanceMarked = "attendance.marked"
)

type EmployeeCreatedEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
}

func NewEmployeeCreatedEvent(employeeID, department string) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseEvent:  newBase(EventTypeEmployeeCreated, map[string]interface{}{"employee_id": employeeID, "department": department}),
		EmployeeID: employeeID,
		Department: department,
	}
}

type EmployeeDeletedEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
}

func NewEmployeeDeletedEvent(employeeID string) *EmployeeDeletedEvent {
	return &EmployeeDeletedEvent{
		BaseEvent:  newBase(EventTypeEmployeeDeleted, map[string]interface{}{"employee_id": employeeID}),
		EmployeeID: employeeID,
	}
}

type AttendanceMarkedEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func NewAttendanceMarkedEvent(employeeID, date, status string) *AttendanceMarkedEvent {
	return &AttendanceMarkedEvent{
		BaseEvent: newBase(EventTypeAttendanceMarked, map[string]interface{}{
			"employee_id": employeeID,
			"date":        date,
			"status":      status,
		}),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
}

func newBase(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// LogHandler records every event it receives at info level.
func LogHandler(logger *slog.Logger) Handler {
	return func(_ context.Context, event Event) error {
		logger.Info("event received",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}
