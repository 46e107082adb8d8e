package shared

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAPIError_ToHTTP(t *testing.T) {
	apiErr := NewAPIError("test_code", "test message").WithDetails(map[string]string{"field": "value"})
	httpErr := apiErr.ToHTTP(http.StatusBadRequest)

	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", httpErr.Code, http.StatusBadRequest)
	}

	payload, ok := httpErr.Message.(*APIError)
	if !ok {
		t.Fatalf("Message should be *APIError, got %T", httpErr.Message)
	}
	if payload.Code != "test_code" || payload.Message != "test message" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Details == nil {
		t.Error("details should be carried through")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  *echo.HTTPError
		code int
	}{
		{name: "bad request", err: BadRequest("c", "m"), code: http.StatusBadRequest},
		{name: "unauthorized", err: Unauthorized("c", "m"), code: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("c", "m"), code: http.StatusForbidden},
		{name: "not found", err: NotFound("c", "m"), code: http.StatusNotFound},
		{name: "conflict", err: Conflict("c", "m"), code: http.StatusConflict},
		{name: "service unavailable", err: ServiceUnavailable("c", "m"), code: http.StatusServiceUnavailable},
		{name: "internal", err: InternalError("c", "m"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
			payload, ok := tt.err.Message.(*APIError)
			if !ok {
				t.Fatalf("Message should be *APIError, got %T", tt.err.Message)
			}
			if payload.Code != "c" {
				t.Errorf("payload code = %s, want c", payload.Code)
			}
		})
	}
}
