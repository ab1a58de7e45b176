package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
)

const (
	accountCreationSubject = "Account Created Successfully!"
	accountCreationMessage = "Hello, thanks for signing up on the Reloadly Data and Voice Subscription Platform. \n" +
		"Your username is: {username} and your password is: {password}."
)

// AccountService orchestrates account CRUD against the store gateway. Every
// operation returns an envelope; storage faults are logged and converted,
// never propagated.
type AccountService struct {
	repo       ports.AccountRepository
	encoder    ports.PasswordEncoder
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, encoder ports.PasswordEncoder, dispatcher ports.NotificationDispatcher, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, encoder: encoder, dispatcher: dispatcher, logger: logger}
}

// CreateAccount registers a new account. An existing email returns the
// existing record with ALREADY_EXISTS; a fresh one is persisted with the
// password hashed and role defaulted to USER, then the signup notification is
// enqueued off the critical path.
func (s *AccountService) CreateAccount(ctx context.Context, req ports.AccountRequest) *domain.Response {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return domain.NewResponse(domain.StatusAlreadyExists, existing)
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("account lookup failed")
		return domain.NewResponse(domain.StatusInternalServerError, nil)
	}

	account := &domain.Account{
		Email:       req.Email,
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		OtherName:   req.OtherName,
		Password:    s.encoder.Encode(req.Password),
		PhoneNumber: req.PhoneNumber,
		Role:        domain.RoleUser,
	}

	saved, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			// Lost the insert race to a concurrent signup. The uniqueness
			// constraint is the source of truth, so this takes the same path
			// as the pre-insert hit.
			if winner, ferr := s.repo.FindByEmail(ctx, req.Email); ferr == nil {
				return domain.NewResponse(domain.StatusAlreadyExists, winner)
			}
			return domain.NewResponse(domain.StatusAlreadyExists, nil)
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to create account")
		return domain.NewResponse(domain.StatusInternalServerError, nil)
	}

	s.dispatcher.Enqueue(buildEmailRequest(req))
	s.logger.Info().Uint64("account_id", saved.ID).Str("email", saved.Email).Msg("account created")

	return domain.NewResponse(domain.StatusOK, saved)
}

// UpdateAccount replaces every mutable field of the account with the request's
// values. The password is re-hashed before persisting.
func (s *AccountService) UpdateAccount(ctx context.Context, id uint64, req ports.AccountRequest) *domain.Response {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.NewResponse(domain.StatusNotFound, nil)
		}
		s.logger.Error().Err(err).Uint64("account_id", id).Msg("account lookup failed")
		return domain.NewResponse(domain.StatusInternalServerError, nil)
	}

	account.Email = req.Email
	account.FirstName = req.FirstName
	account.Surname = req.Surname
	account.OtherName = req.OtherName
	account.Password = s.encoder.Encode(req.Password)
	account.PhoneNumber = req.PhoneNumber

	saved, err := s.repo.Update(ctx, account)
	if err != nil {
		s.logger.Error().Err(err).Uint64("account_id", id).Msg("failed to update account")
		return domain.NewResponse(domain.StatusInternalServerError, account)
	}

	s.logger.Info().Uint64("account_id", saved.ID).Msg("account updated")
	return domain.NewResponse(domain.StatusOK, saved)
}

// FindAccountByEmail looks up a single account by its business key.
func (s *AccountService) FindAccountByEmail(ctx context.Context, email string) *domain.Response {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.NewResponse(domain.StatusNotFound, nil)
		}
		s.logger.Error().Err(err).Str("email", email).Msg("account lookup failed")
		return domain.NewResponse(domain.StatusInternalServerError, nil)
	}
	return domain.NewResponse(domain.StatusOK, account)
}

// buildEmailRequest assembles the signup notification from the original
// request, not the persisted record, so the welcome message carries the
// credentials the user actually typed.
func buildEmailRequest(req ports.AccountRequest) domain.EmailRequest {
	message := strings.NewReplacer(
		"{username}", req.Email,
		"{password}", req.Password,
	).Replace(accountCreationMessage)

	return domain.EmailRequest{
		To:      req.Email,
		Subject: accountCreationSubject,
		Message: message,
	}
}
