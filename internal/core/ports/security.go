package ports

import "github.com/codewithemma/account-microservice/internal/core/domain"

// PasswordEncoder derives deterministic one-way password hashes. Re-encoding
// a login attempt and comparing to the stored hash is the verification path.
type PasswordEncoder interface {
	Encode(plaintext string) string
	Matches(plaintext, hash string) bool
}

// TokenIssuer signs short-lived credentials bound to one account's identity
// and role.
type TokenIssuer interface {
	Generate(cred domain.Credential) (string, error)
}
