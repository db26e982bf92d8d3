package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler writes request errors as JSON responses with standardized handling
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ErrorResponse is the wire shape of every error body: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HandleRequestError handles any error raised while serving a request.
func (h *ErrorHandler) HandleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	// Normalize to StandardError
	stdErr := h.normalizeError(err)

	status := HTTPStatus(stdErr.Code)
	h.logError(r, stdErr, status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: stdErr.Message})
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(r *http.Request, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"method":     r.Method,
		"path":       r.URL.Path,
		"errorCode":  string(stdErr.Code),
		"message":    stdErr.Message,
		"details":    stdErr.Details,
		"httpStatus": status,
	}

	// 4xx responses are expected user outcomes, not service faults
	if IsClientError(stdErr.Code) {
		h.logger.Warn("request rejected", fields)
		return
	}
	h.logger.Error("request failed", fields)
}
