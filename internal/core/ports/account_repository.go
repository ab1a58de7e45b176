package ports

import (
	"context"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// AccountRepository abstracts the durable account store. Absence is reported
// as domain.ErrAccountNotFound and duplicate emails as domain.ErrAccountExists;
// anything else is an infrastructure fault.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id uint64) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
