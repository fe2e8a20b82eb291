package models

import "time"

// PersonModel stores every person variant in one table discriminated by Kind.
// IdentityID is nullable: administrative records may exist without a login.
type PersonModel struct {
	ID          uint   `gorm:"primarykey"`
	Kind        string `gorm:"not null;size:20;index"`
	FirstName   string `gorm:"not null;size:100"`
	LastName    string `gorm:"not null;size:100"`
	NationalID  string `gorm:"column:national_id;uniqueIndex;not null;size:11"`
	PhoneNumber string `gorm:"not null;size:15"`
	Active      bool   `gorm:"not null;default:true"`
	IdentityID  *uint  `gorm:"uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PersonModel) TableName() string {
	return "people"
}
