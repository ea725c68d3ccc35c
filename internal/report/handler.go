package report

import (
	"bytes"
	"context"
	"net/http"

	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	Summary(ctx context.Context) ([]EmployeeSummary, error)
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

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.Dashboard(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Summary(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.Dashboard(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	rows, err := h.Service.Summary(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	// Buffered so a failed write can still become a JSON error.
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, d, rows); err != nil {
		h.Logger.Error("ExportSummary: failed to build workbook", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-summary.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Warn("ExportSummary: write failed", "error", err)
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/summary", h.GetSummary)
	r.Get("/summary.xlsx", h.ExportSummary)
}
