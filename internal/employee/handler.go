package employee

import (
	"context"
	"net/http"

	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Get(ctx context.Context, employeeID string) (*Employee, error)
	Delete(ctx context.Context, employeeID string) error
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

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.Logger.Warn("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), employeeID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeleteEmployee: employee deleted", "employee_id", employeeID)
	h.WriteJSON(w, http.StatusOK, DeleteEmployeeResponse{Message: "Deleted"})
}

// Routes mounts the employee endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetEmployees)
	r.Post("/", h.CreateEmployee)
	r.Get("/{id}", h.GetEmployee)
	r.Delete("/{id}", h.DeleteEmployee)
}
