package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Response is what every handler returns on success.
type Response struct {
	Status int
	Body   any
}

// Func is the handler signature every endpoint uses.
// Return (*Response, nil) on success or (nil, err) on failure.
type Func func(r *http.Request) (*Response, error)

// Handle adapts a Func into a standard http.HandlerFunc.
// It is the single place that writes HTTP responses.
func Handle(fn Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := fn(r)
		if err != nil {
			var ve ValidationError
			var ce Error
			switch {
			case errors.As(err, &ve):
				writeJSON(r, w, http.StatusBadRequest, errorBody{
					Message: "validation failed",
					Errors:  ve.Fields,
				})
			case errors.As(err, &ce):
				if ce.Code >= http.StatusInternalServerError {
					slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "status", ce.Code, "error", ce.Message)
				}
				writeJSON(r, w, ce.Code, errorBody{Message: ce.Message})
			default:
				slog.ErrorContext(r.Context(), "unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
				writeJSON(r, w, http.StatusInternalServerError, errorBody{Message: "internal error"})
			}
			return
		}

		if resp.Body != nil {
			writeJSON(r, w, resp.Status, resp.Body)
		} else {
			w.WriteHeader(resp.Status)
		}
	}
}

func writeJSON(r *http.Request, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.WarnContext(r.Context(), "failed to encode response", "error", err)
	}
}
