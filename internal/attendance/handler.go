package attendance

import (
	"context"
	"net/http"

	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Mark(ctx context.Context, dto MarkAttendanceDTO) (*Record, error)
	List(ctx context.Context, filter Filter) ([]*Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Record, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.Logger.Warn("MarkAttendance: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Mark(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

// GetAttendance lists records, optionally filtered by employee_id, status,
// from and to query parameters.
func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, appErr := FilterQuery{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}.Parse()
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	records, err := h.Service.List(r.Context(), filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetAttendance)
	r.Post("/", h.MarkAttendance)
	r.Get("/employee/{id}", h.GetEmployeeAttendance)
}
