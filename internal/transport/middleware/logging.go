package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
)

// maxLoggedBody bounds how much of a request body is logged.
const maxLoggedBody = 4 << 10

// redactedFields are masked wherever they appear in headers or JSON bodies.
var redactedFields = []string{
	"authorization",
	"cookie",
	"token",
	"secret",
	"password",
	"email",
}

func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())

			if logger.Enabled(r.Context(), slog.LevelDebug) {
				logger.Debug("incoming request",
					"request_id", reqID,
					"method", r.Method,
					"path", r.URL.Path,
					"query", r.URL.RawQuery,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent(),
					"headers", redactHeaders(r.Header),
					"body", peekBody(r),
				)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "request completed",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// peekBody reads up to maxLoggedBody bytes and restores the body for the
// handler.
func peekBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	head, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
	if err != nil {
		return ""
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
	return redactBody(head)
}

func isRedacted(name string) bool {
	name = strings.ToLower(name)
	for _, f := range redactedFields {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if isRedacted(name) {
			out[name] = "[FILTERED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return "[non-JSON body]"
	}
	out, err := json.Marshal(redactJSON(data))
	if err != nil {
		return "[unprintable body]"
	}
	return string(out)
}

func redactJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isRedacted(key) {
				out[key] = "[FILTERED]"
			} else {
				out[key] = redactJSON(value)
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = redactJSON(item)
		}
		return out
	default:
		return v
	}
}
