package ports

import (
	"context"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// AuthRequest is a login attempt. It is echoed back inside the failure
// envelope, so it carries JSON tags.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse wraps the issued token in a success envelope payload.
type AuthResponse struct {
	Token string `json:"token"`
}

// AuthService authenticates users. Like AccountService, Login is total: every
// input yields a well-formed envelope.
type AuthService interface {
	Login(ctx context.Context, req AuthRequest) *domain.Response
}
