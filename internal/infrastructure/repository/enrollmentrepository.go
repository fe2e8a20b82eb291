package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/schedule"
	"gymkeep/internal/infrastructure/persistence/models"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEnrollmentRepository(db *gorm.DB, logger logger.Interface) schedule.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *schedule.Enrollment) error {
	model := &models.EnrollmentModel{
		ClientID:    enrollment.ClientID(),
		ClassSlotID: enrollment.ClassSlotID(),
		CreatedAt:   enrollment.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return schedule.ErrAlreadyEnrolled
		}
		r.logger.Errorw("failed to create enrollment", "error", err,
			"client_id", enrollment.ClientID(), "class_slot_id", enrollment.ClassSlotID())
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return enrollment.SetID(model.ID)
}

func (r *EnrollmentRepositoryImpl) FindByClientAndSlot(ctx context.Context, clientID, classSlotID uint) (*schedule.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND class_slot_id = ?", clientID, classSlotID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find enrollment", "error", err,
			"client_id", clientID, "class_slot_id", classSlotID)
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}

	return enrollmentToEntity(&model)
}

func (r *EnrollmentRepositoryImpl) ListByClient(ctx context.Context, clientID uint) ([]*schedule.Enrollment, error) {
	var modelList []models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list enrollments", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	enrollments := make([]*schedule.Enrollment, 0, len(modelList))
	for i := range modelList {
		e, err := enrollmentToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, nil
}

func (r *EnrollmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EnrollmentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete enrollment", "error", result.Error, "enrollment_id", id)
		return fmt.Errorf("failed to delete enrollment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("enrollment not found")
	}

	return nil
}

func (r *EnrollmentRepositoryImpl) CountBySlot(ctx context.Context, classSlotID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EnrollmentModel{}).
		Where("class_slot_id = ?", classSlotID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count enrollments", "error", err, "class_slot_id", classSlotID)
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return count, nil
}

func enrollmentToEntity(model *models.EnrollmentModel) (*schedule.Enrollment, error) {
	return schedule.ReconstructEnrollment(
		model.ID,
		model.ClientID,
		model.ClassSlotID,
		model.CreatedAt,
	)
}
