package domain

import (
	"testing"
	"time"
)

func TestStatusCodeDescriptionsAreFixed(t *testing.T) {
	cases := map[StatusCode]string{
		StatusOK:                  "Successful",
		StatusNotFound:            "Account Not Found",
		StatusAlreadyExists:       "Account Already Exists",
		StatusInvalidCredentials:  "Invalid Credentials",
		StatusInternalServerError: "Internal Server Error",
	}
	for code, want := range cases {
		if got := code.Description(); got != want {
			t.Fatalf("code %s: expected %q, got %q", code, want, got)
		}
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse(StatusOK, "payload")

	if resp.StatusCode != StatusOK {
		t.Fatalf("unexpected code: %s", resp.StatusCode)
	}
	if resp.StatusMessage != StatusOK.Description() {
		t.Fatalf("message must mirror the canonical description, got %q", resp.StatusMessage)
	}
	if resp.Data != "payload" {
		t.Fatalf("unexpected data: %v", resp.Data)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", resp.Timestamp)
	}
}
