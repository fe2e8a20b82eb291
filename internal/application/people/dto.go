package people

import (
	"time"

	"gymkeep/internal/domain/person"
)

type PersonDTO struct {
	ID          uint      `json:"id"`
	Kind        string    `json:"kind"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	NationalID  string    `json:"national_id"`
	PhoneNumber string    `json:"phone_number"`
	Active      bool      `json:"active"`
	HasLogin    bool      `json:"has_login"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListResult struct {
	People   []PersonDTO `json:"people"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type UpdateContactCommand struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

func personToDTO(p *person.Person) PersonDTO {
	return PersonDTO{
		ID:          p.ID(),
		Kind:        p.Kind().String(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		NationalID:  p.NationalID(),
		PhoneNumber: p.PhoneNumber(),
		Active:      p.Active(),
		HasLogin:    p.IdentityID() != nil,
		CreatedAt:   p.CreatedAt(),
	}
}
