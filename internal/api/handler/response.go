package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hszk-dev/mediahub/internal/api/middleware"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
)

// Envelope is the shape of every response body, success or failure.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Kind       string `json:"kind,omitempty"`
}

// unexpectedErrorMessage replaces the message of untyped failures.
const unexpectedErrorMessage = "An unexpected error occurred"

// JSON encodes data before touching the response, so a value that cannot be
// encoded turns into a 500 envelope instead of an empty success.
func JSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&buf).Encode(data); err != nil {
			slog.Error("failed to encode response", "status", status, "error", err)
			buf.Reset()
			status = http.StatusInternalServerError
			_ = json.NewEncoder(&buf).Encode(Envelope{
				StatusCode: status,
				Message:    unexpectedErrorMessage,
				Kind:       string(apperr.KindStore),
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Success writes a successful envelope.
func Success(w http.ResponseWriter, status int, data any, message string) {
	JSON(w, status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, kind apperr.Kind, message string) {
	JSON(w, status, Envelope{
		StatusCode: status,
		Data:       nil,
		Message:    message,
		Success:    false,
		Kind:       kind.String(),
	})
}

// Fail maps err to a status code and writes it. Anything that is not a typed
// failure is reported as a store error and logged.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = &apperr.Error{Kind: apperr.KindStore, Message: unexpectedErrorMessage, Err: err}
		if errors.Is(err, middleware.ErrMissingToken) || errors.Is(err, middleware.ErrInvalidToken) {
			appErr = apperr.Unauthorized(err.Error())
		}
	}

	status := StatusOf(appErr.Kind)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"kind", appErr.Kind,
			"error", err,
		)
	}

	Error(w, status, appErr.Kind, appErr.Message)
}

// StatusOf returns the HTTP status code of a failure kind.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUpload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
