package account

import (
	"time"

	"gymkeep/internal/domain/identity"
	"gymkeep/internal/domain/person"
)

type RegisterCommand struct {
	Login       string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	NationalID  string
	PhoneNumber string
}

// ProvisionCommand creates an account with an explicit role, for
// staff-driven onboarding of clients, trainers and employees.
type ProvisionCommand struct {
	RegisterCommand
	Role string
}

type LoginCommand struct {
	Login    string
	Password string
	Remember bool
	Next     string
}

type LoginResult struct {
	Token      string     `json:"token"`
	ExpiresIn  int64      `json:"expires_in"`
	NextTarget string     `json:"next_target"`
	Account    AccountDTO `json:"account"`
}

type AccountDTO struct {
	IdentityID  uint      `json:"identity_id"`
	PersonID    uint      `json:"person_id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	NationalID  string    `json:"national_id"`
	PhoneNumber string    `json:"phone_number"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func accountToDTO(ident *identity.Identity, p *person.Person) AccountDTO {
	return AccountDTO{
		IdentityID:  ident.ID(),
		PersonID:    p.ID(),
		Login:       ident.Login(),
		Email:       ident.Email(),
		Role:        ident.Role().String(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		NationalID:  p.NationalID(),
		PhoneNumber: p.PhoneNumber(),
		Active:      p.Active(),
		CreatedAt:   ident.CreatedAt(),
	}
}
