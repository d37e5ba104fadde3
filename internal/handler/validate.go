package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// FieldError describes one invalid request field.  Validation
// failures answer with HTTP 400 and the full list of field errors so
// the dashboard can mark every offending input at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldErrors accumulates validation failures for one request body.
type fieldErrors struct {
	errs []FieldError
}

// add records one failure.
func (v *fieldErrors) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// require records a failure when a required string is empty after
// trimming.
func (v *fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

// oneOf records a failure when value is not in the allowed set.
// Empty values are skipped; pair with require when the field is
// mandatory.
func (v *fieldErrors) oneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

// ok reports whether no failures were recorded.
func (v *fieldErrors) ok() bool {
	return len(v.errs) == 0
}

// respond writes the 400 response carrying all recorded failures.
func (v *fieldErrors) respond(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":  "validation failed",
		"fields": v.errs,
	})
}
