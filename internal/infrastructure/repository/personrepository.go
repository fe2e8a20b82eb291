package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/persistence/models"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/query"
)

// personSearchColumns are the columns a free-text person search matches
// against. Every term of the phrase must hit at least one of them.
var personSearchColumns = []string{"first_name", "last_name", "national_id", "phone_number"}

type PersonRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPersonRepository(db *gorm.DB, logger logger.Interface) person.Repository {
	return &PersonRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PersonRepositoryImpl) GetByID(ctx context.Context, id uint) (*person.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get person by ID", "error", err, "person_id", id)
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return personToEntity(&model)
}

func (r *PersonRepositoryImpl) GetByIdentityID(ctx context.Context, identityID uint) (*person.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).Where("identity_id = ?", identityID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get person by identity ID", "error", err, "identity_id", identityID)
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return personToEntity(&model)
}

func (r *PersonRepositoryImpl) FindByNationalID(ctx context.Context, nationalID string) (*person.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find person by national ID", "error", err)
		return nil, fmt.Errorf("failed to find person: %w", err)
	}

	return personToEntity(&model)
}

func (r *PersonRepositoryImpl) List(ctx context.Context, filter person.Filter) ([]*person.Person, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.PersonModel{})

	if filter.Kind != "" {
		tx = tx.Where("kind = ?", string(filter.Kind))
	}
	tx = query.ApplySearch(tx, filter.Search, personSearchColumns...)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count people", "error", err)
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	page := query.PageFilter{Page: filter.Page, PageSize: filter.PageSize}

	var modelList []models.PersonModel
	if err := tx.Order("active DESC, last_name ASC, first_name ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list people", "error", err)
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}

	people := make([]*person.Person, 0, len(modelList))
	for i := range modelList {
		p, err := personToEntity(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		people = append(people, p)
	}

	return people, total, nil
}

func (r *PersonRepositoryImpl) Update(ctx context.Context, p *person.Person) error {
	result := r.db.WithContext(ctx).Model(&models.PersonModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"first_name":   p.FirstName(),
			"last_name":    p.LastName(),
			"phone_number": p.PhoneNumber(),
			"active":       p.Active(),
			"identity_id":  p.IdentityID(),
			"updated_at":   p.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update person", "error", result.Error, "person_id", p.ID())
		return fmt.Errorf("failed to update person: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("person not found")
	}

	return nil
}

func personToModel(p *person.Person) *models.PersonModel {
	return &models.PersonModel{
		ID:          p.ID(),
		Kind:        p.Kind().String(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		NationalID:  p.NationalID(),
		PhoneNumber: p.PhoneNumber(),
		Active:      p.Active(),
		IdentityID:  p.IdentityID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func personToEntity(model *models.PersonModel) (*person.Person, error) {
	return person.ReconstructPerson(
		model.ID,
		person.Kind(model.Kind),
		model.FirstName,
		model.LastName,
		model.NationalID,
		model.PhoneNumber,
		model.Active,
		model.IdentityID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
