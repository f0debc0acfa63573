package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(err, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if err.Error() != "An internal error occurred: boom" {
			t.Fatalf("unexpected error string: %q", err.Error())
		}
		body := err.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty message falls back to status text", func(t *testing.T) {
		err := NewDomainErrorSimple("NOT_FOUND", "", http.StatusNotFound)
		if got := err.ToHTTPError().Message; got != "Not Found" {
			t.Fatalf("expected status text, got %q", got)
		}
	})
}
