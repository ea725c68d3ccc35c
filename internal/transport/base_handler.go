package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
)

// maxBodyBytes caps request bodies; HR payloads are a few hundred bytes.
const maxBodyBytes = 1 << 20

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a plain error response in the AppError envelope.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Warn("http error", "status", status, "message", message)
	errType := apperrors.ErrorTypeInternal
	switch {
	case status == http.StatusNotFound:
		errType = apperrors.ErrorTypeNotFound
	case status == http.StatusConflict:
		errType = apperrors.ErrorTypeConflict
	case status >= 400 && status < 500:
		errType = apperrors.ErrorTypeValidation
	}
	h.WriteJSON(w, status, apperrors.Response{
		Detail: message,
		Error: &apperrors.AppError{
			Type:       errType,
			Code:       apperrors.ErrorCode(http.StatusText(status)),
			Message:    message,
			StatusCode: status,
		},
	})
}

// HandleServiceError translates service errors into HTTP responses. Anything
// that is not an AppError is reported as a 500 without leaking its text.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError("Internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		h.Logger.Error("service error", "error", err, "code", appErr.Code)
	} else {
		h.Logger.Debug("request rejected", "code", appErr.Code, "message", appErr.GetDetailedMessage())
	}

	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// DecodeJSON reads a size-limited JSON body into dst.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}
