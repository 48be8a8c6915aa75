package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"documentos/document"
)

// ---------------------------------------------------------------------------
// HTTP Server
// ---------------------------------------------------------------------------

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Error   *apiError `json:"error,omitempty"`
}

// newServer serves rendered documents at GET /documents/{id}.
func newServer(g *document.Generator, timeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		data, err := g.Generate(ctx, id)
		if err != nil {
			status, code := statusFor(err)
			writeError(w, status, code, document.Alert(err))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", documentFilename(id)))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(apiResponse{Success: true})
	})

	return mux
}

// statusFor maps a generation error to an HTTP status and an error code.
func statusFor(err error) (int, string) {
	var missing *document.MissingDataError
	switch {
	case errors.Is(err, document.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &missing), errors.Is(err, document.ErrUnknownKind):
		return http.StatusUnprocessableEntity, "INVALID_DOCUMENT"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "TIMEOUT"
	default:
		return http.StatusInternalServerError, "RENDER_FAILED"
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}
