package models

// AccountCollection is the store collection holding registered accounts.
const AccountCollection = "user"

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered user account.
//
// PasswordHash holds the tagged password string produced at registration;
// it is a placeholder for a real hash, not a cryptographic digest.
type Account struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Role         string  `json:"role"`
	IsActive     bool    `json:"is_active"`
}

// NewAccount builds an account with defaults applied. The caller is
// responsible for lowercasing the email and checking it is not taken.
func NewAccount(name, email, passwordHash string) Account {
	return Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		IsActive:     true,
	}
}
