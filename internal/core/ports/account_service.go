package ports

import (
	"context"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// AccountRequest carries the account fields accepted on create and update.
type AccountRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	Surname     string `json:"surname"`
	OtherName   string `json:"otherName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// AccountService orchestrates account CRUD. Every operation is total: any
// input, including one that hits a storage fault, yields a well-formed
// envelope and never an escaped error.
type AccountService interface {
	CreateAccount(ctx context.Context, req AccountRequest) *domain.Response
	UpdateAccount(ctx context.Context, id uint64, req AccountRequest) *domain.Response
	FindAccountByEmail(ctx context.Context, email string) *domain.Response
}
