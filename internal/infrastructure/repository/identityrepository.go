package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/identity"
	"gymkeep/internal/infrastructure/persistence/models"
	"gymkeep/internal/shared/authorization"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type IdentityRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewIdentityRepository(db *gorm.DB, logger logger.Interface) identity.Repository {
	return &IdentityRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *IdentityRepositoryImpl) GetByID(ctx context.Context, id uint) (*identity.Identity, error) {
	var model models.IdentityModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get identity by ID", "error", err, "identity_id", id)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identityToEntity(&model)
}

func (r *IdentityRepositoryImpl) FindByLogin(ctx context.Context, login string) (*identity.Identity, error) {
	return r.findBy(ctx, "login = ?", login)
}

func (r *IdentityRepositoryImpl) FindByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	return r.findBy(ctx, "email = ?", email)
}

func (r *IdentityRepositoryImpl) findBy(ctx context.Context, cond string, value string) (*identity.Identity, error) {
	var model models.IdentityModel
	if err := r.db.WithContext(ctx).Where(cond, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find identity", "error", err)
		return nil, fmt.Errorf("failed to find identity: %w", err)
	}

	return identityToEntity(&model)
}

func (r *IdentityRepositoryImpl) Update(ctx context.Context, ident *identity.Identity) error {
	result := r.db.WithContext(ctx).Model(&models.IdentityModel{}).
		Where("id = ?", ident.ID()).
		Updates(map[string]interface{}{
			"email":         ident.Email(),
			"password_hash": ident.PasswordHash(),
			"updated_at":    ident.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update identity", "error", result.Error, "identity_id", ident.ID())
		return fmt.Errorf("failed to update identity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("identity not found")
	}

	return nil
}

func identityToModel(ident *identity.Identity) *models.IdentityModel {
	return &models.IdentityModel{
		ID:           ident.ID(),
		Login:        ident.Login(),
		Email:        ident.Email(),
		PasswordHash: ident.PasswordHash(),
		Role:         ident.Role().String(),
		CreatedAt:    ident.CreatedAt(),
		UpdatedAt:    ident.UpdatedAt(),
	}
}

func identityToEntity(model *models.IdentityModel) (*identity.Identity, error) {
	role, ok := authorization.ParseRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %s", identity.ErrUnknownRole, model.Role)
	}

	return identity.ReconstructIdentity(
		model.ID,
		model.Login,
		model.Email,
		model.PasswordHash,
		role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
