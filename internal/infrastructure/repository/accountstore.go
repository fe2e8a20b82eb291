package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/identity"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/persistence/models"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

// AccountStore creates an identity and its person record in one
// transaction. Either both rows land or neither does.
type AccountStore struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAccountStore(db *gorm.DB, logger logger.Interface) *AccountStore {
	return &AccountStore{
		db:     db,
		logger: logger,
	}
}

// Provision inserts the identity first, links its generated ID into the
// person, then inserts the person. Uniqueness violations surface as the
// matching domain sentinel so callers can report which field collided.
func (s *AccountStore) Provision(ctx context.Context, ident *identity.Identity, p *person.Person) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		identModel := identityToModel(ident)
		identModel.ID = 0
		if err := tx.Create(identModel).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return s.classifyIdentityConflict(tx, ident)
			}
			s.logger.Errorw("failed to create identity", "error", err, "login", ident.Login())
			return fmt.Errorf("failed to create identity: %w", err)
		}

		if err := ident.SetID(identModel.ID); err != nil {
			return err
		}
		if err := p.LinkIdentity(identModel.ID); err != nil {
			return err
		}

		personModel := personToModel(p)
		personModel.ID = 0
		if err := tx.Create(personModel).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return person.ErrNationalIDTaken
			}
			s.logger.Errorw("failed to create person", "error", err, "national_id", p.NationalID())
			return fmt.Errorf("failed to create person: %w", err)
		}

		return p.SetID(personModel.ID)
	})
}

// ProvisionPerson inserts a person record that has no login attached,
// for people managed administratively.
func (s *AccountStore) ProvisionPerson(ctx context.Context, p *person.Person) error {
	model := personToModel(p)
	model.ID = 0

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return person.ErrNationalIDTaken
		}
		s.logger.Errorw("failed to create person", "error", err, "national_id", p.NationalID())
		return fmt.Errorf("failed to create person: %w", err)
	}

	return p.SetID(model.ID)
}

// classifyIdentityConflict decides whether the login or the email clashed.
// Both columns carry unique indexes, so a duplicate error on insert means
// one of them already exists.
func (s *AccountStore) classifyIdentityConflict(tx *gorm.DB, ident *identity.Identity) error {
	var count int64
	if err := tx.Model(&models.IdentityModel{}).
		Where("login = ?", ident.Login()).
		Count(&count).Error; err == nil && count > 0 {
		return identity.ErrLoginTaken
	}
	return identity.ErrEmailTaken
}
