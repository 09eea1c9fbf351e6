package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
	"dashkit/internal/http/middleware"
)

// errorBody is the JSON shape of every failed API call.
type errorBody struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var statusCodes = map[int]string{
	http.StatusBadRequest:            "bad_request",
	http.StatusUnauthorized:          "unauthorized",
	http.StatusForbidden:             "forbidden",
	http.StatusNotFound:              "not_found",
	http.StatusConflict:              "conflict",
	http.StatusRequestEntityTooLarge: "too_large",
	http.StatusTooManyRequests:       "rate_limited",
	http.StatusServiceUnavailable:    "unavailable",
}

func codeFor(status int) string {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return "error"
}

func writeError(c *gin.Context, status int, code, message string, cause error) {
	body := errorBody{Message: message, Code: code, RequestID: middleware.GetRequestID(c)}
	if cause != nil {
		body.Error = cause.Error()
	}
	c.JSON(status, body)
}

// RespondError writes status with a message and, when set, the cause.
func RespondError(c *gin.Context, status int, message string, err error) {
	writeError(c, status, codeFor(status), message, err)
}

// domainStatuses is checked in order; the first match decides the status.
var domainStatuses = []struct {
	match  func(error) bool
	status int
	code   string
}{
	{domain.IsValidation, http.StatusBadRequest, "validation_error"},
	{domain.IsUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.IsForbidden, http.StatusForbidden, "forbidden"},
	{domain.IsNotFound, http.StatusNotFound, "not_found"},
	{domain.IsConflict, http.StatusConflict, "conflict"},
}

// RespondDomainError maps a service error to its HTTP status. Internal
// errors are attached to the context for the logger and never echoed.
func RespondDomainError(c *gin.Context, err error) {
	for _, d := range domainStatuses {
		if d.match(err) {
			writeError(c, d.status, d.code, err.Error(), nil)
			return
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
		return
	}
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
}
