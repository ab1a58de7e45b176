package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
)

// AuthService implements login: account lookup, hash comparison, token
// issuance.
type AuthService struct {
	repo    ports.AccountRepository
	encoder ports.PasswordEncoder
	issuer  ports.TokenIssuer
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, encoder ports.PasswordEncoder, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, encoder: encoder, issuer: issuer, logger: logger}
}

// Login authenticates by email and password. Unknown usernames and wrong
// passwords produce the identical INVALID_CREDENTIALS envelope echoing the
// request; nothing in the response reveals which case occurred.
func (s *AuthService) Login(ctx context.Context, req ports.AuthRequest) *domain.Response {
	account, err := s.repo.FindByEmail(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Error().Err(err).Msg("credential lookup failed")
			return domain.NewResponse(domain.StatusInternalServerError, nil)
		}
		s.logger.Debug().Str("username", req.Username).Msg("login attempt for unknown account")
		return domain.NewResponse(domain.StatusInvalidCredentials, req)
	}

	if !s.encoder.Matches(req.Password, account.Password) {
		s.logger.Debug().Str("username", req.Username).Msg("login attempt with wrong password")
		return domain.NewResponse(domain.StatusInvalidCredentials, req)
	}

	token, err := s.issuer.Generate(account.Credential())
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("token signing failed")
		return domain.NewResponse(domain.StatusInternalServerError, nil)
	}

	s.logger.Info().Uint64("account_id", account.ID).Msg("login succeeded")
	return domain.NewResponse(domain.StatusOK, ports.AuthResponse{Token: token})
}
