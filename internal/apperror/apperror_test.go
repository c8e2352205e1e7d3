package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: NewNotFound("profile", "no profile in request"), want: http.StatusNotFound},
		{name: "invalid input", err: NewInvalidInput("bad json", errors.New("eof")), want: http.StatusBadRequest},
		{name: "wrapped invalid input", err: fmt.Errorf("decode: %w", NewInvalidInput("bad json", nil)), want: http.StatusBadRequest},
		{name: "unavailable", err: NewUnavailable("ai review", context.DeadlineExceeded), want: http.StatusServiceUnavailable},
		{name: "internal", err: NewInternal("boom", nil), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToHTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	err := NewUnavailable("ai review", context.Canceled)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected both base error and cause to match: %v", err)
	}
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	body := ToJSON(NewNotFound("profile", ""))
	if body["error"] != "not found" || body["message"] != "profile not found" {
		t.Fatalf("unexpected body: %v", body)
	}

	body = ToJSON(errors.New("secret detail"))
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected body for plain error: %v", body)
	}
}
