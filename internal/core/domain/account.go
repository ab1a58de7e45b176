package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Account is the identity record kept for every registered user. The email
// address is the unique business key; Password always holds the derived hash,
// never the plaintext.
type Account struct {
	ID          uint64    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	Surname     string    `json:"surname"`
	OtherName   string    `json:"otherName,omitempty"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Credential is the projection of an Account used for authentication checks
// and token issuance. It is derived on demand, never stored.
type Credential struct {
	ID          uint64
	Email       string
	Password    string
	Role        string
	FirstName   string
	Surname     string
	PhoneNumber string
}

// Credential returns the authentication view of the account.
func (a *Account) Credential() Credential {
	return Credential{
		ID:          a.ID,
		Email:       a.Email,
		Password:    a.Password,
		Role:        a.Role,
		FirstName:   a.FirstName,
		Surname:     a.Surname,
		PhoneNumber: a.PhoneNumber,
	}
}
