package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

const accountsTable = "accounts"

// accountModel is the storage shape of a domain.Account.
type accountModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Email       string `gorm:"size:255;not null;uniqueIndex"`
	FirstName   string `gorm:"size:100;not null"`
	Surname     string `gorm:"size:100;not null"`
	OtherName   string `gorm:"size:100"`
	Password    string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"size:32"`
	Role        string `gorm:"size:16;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (accountModel) TableName() string { return accountsTable }

// AccountRepository is the MySQL-backed account store gateway.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint64) (*domain.Account, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return m.toDomain(), nil
}

// Create inserts account and returns the persisted record with its assigned
// id. A unique-constraint violation on email maps to domain.ErrAccountExists.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return m.toDomain(), nil
}

// Update persists every field of account and returns the authoritative
// record.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m := fromDomain(account)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return m.toDomain(), nil
}

func (m *accountModel) toDomain() *domain.Account {
	return &domain.Account{
		ID:          m.ID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		Surname:     m.Surname,
		OtherName:   m.OtherName,
		Password:    m.Password,
		PhoneNumber: m.PhoneNumber,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomain(a *domain.Account) *accountModel {
	return &accountModel{
		ID:          a.ID,
		Email:       a.Email,
		FirstName:   a.FirstName,
		Surname:     a.Surname,
		OtherName:   a.OtherName,
		Password:    a.Password,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
