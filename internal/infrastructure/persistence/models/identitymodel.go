// Package models holds the gorm persistence models. They are the
// anti-corruption layer between the domain entities and the database schema;
// repositories translate in both directions.
package models

import "time"

type IdentityModel struct {
	ID           uint   `gorm:"primarykey"`
	Login        string `gorm:"uniqueIndex;not null;size:25"`
	Email        string `gorm:"uniqueIndex;not null;size:256"`
	PasswordHash string `gorm:"not null;size:256"`
	Role         string `gorm:"not null;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (IdentityModel) TableName() string {
	return "identities"
}
