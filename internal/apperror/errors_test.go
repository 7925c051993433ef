package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestSafeMessage_UnwrapsWrappedAppError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFound("card not found"))

	if got := SafeMessage(err); got != "card not found" {
		t.Errorf("expected wrapped message, got %q", got)
	}
	if got := SafeCode(err); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func TestSafeMessage_HidesPlainErrors(t *testing.T) {
	err := errors.New("dial tcp 10.0.0.4:3306: connection refused")

	if got := SafeMessage(err); got != "an unexpected error occurred" {
		t.Errorf("expected generic message, got %q", got)
	}
	if got := SafeCode(err); got != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got)
	}
}

func TestNewUpstream_ClampsNonErrorCodes(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{http.StatusUnauthorized, http.StatusUnauthorized},
		{http.StatusOK, http.StatusBadGateway},
		{0, http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := NewUpstream(tt.in, "x").Code; got != tt.want {
			t.Errorf("NewUpstream(%d).Code = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewBadGateway_KeepsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := NewBadGateway("image service unavailable", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the transport cause")
	}
	if err.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", err.Code)
	}
}

func TestNewInternalMessage_KeepsMessageAndCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewInternalMessage("Failed to generate design", cause)

	if err.Code != http.StatusInternalServerError || err.Type != "internal_error" {
		t.Errorf("unexpected code/type %d/%s", err.Code, err.Type)
	}
	if SafeMessage(err) != "Failed to generate design" {
		t.Errorf("unexpected message %q", SafeMessage(err))
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}
