package security

import (
	"testing"
	"time"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

func testCredential() domain.Credential {
	return domain.Credential{
		ID:    1,
		Email: "a@x.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", time.Hour)

	token, err := issuer.Generate(testCredential())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %s", claims.Subject)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role USER, got %s", claims.Role)
	}
	if claims.AccountID != 1 {
		t.Fatalf("expected account id 1, got %d", claims.AccountID)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry")
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Generate(testCredential())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.Validate(token); err == nil {
		t.Fatalf("expected rejection of token signed with a different secret")
	}
}

func TestTokenIssuer_RejectsTampered(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", time.Hour)

	token, err := issuer.Generate(testCredential())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := issuer.Validate(token + "x"); err == nil {
		t.Fatalf("expected rejection of tampered token")
	}
	if _, err := issuer.Validate("not-a-token"); err == nil {
		t.Fatalf("expected rejection of malformed token")
	}
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", time.Millisecond)

	token, err := issuer.Generate(testCredential())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := issuer.Validate(token); err == nil {
		t.Fatalf("expected rejection of expired token")
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", 0)
	if issuer.ttl != defaultTTL {
		t.Fatalf("expected default TTL, got %s", issuer.ttl)
	}
}
