package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

func TestClient_PostSendsJSONPayload(t *testing.T) {
	var received domain.EmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Post(context.Background(), domain.EmailRequest{
		To:      "a@x.com",
		Subject: "Account Created Successfully!",
		Message: "welcome",
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if received.To != "a@x.com" || received.Subject == "" || received.Message != "welcome" {
		t.Fatalf("unexpected payload: %+v", received)
	}
}

func TestClient_PostReportsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.Post(context.Background(), domain.EmailRequest{To: "a@x.com"}); err == nil {
		t.Fatalf("expected error on 502 response")
	}
}

func TestClient_PostHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL)
	if err := client.Post(ctx, domain.EmailRequest{To: "a@x.com"}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
