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

type ClassSlotRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewClassSlotRepository(db *gorm.DB, logger logger.Interface) schedule.ClassSlotRepository {
	return &ClassSlotRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ClassSlotRepositoryImpl) Create(ctx context.Context, slot *schedule.ClassSlot) error {
	model := slotToModel(slot)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create class slot", "error", err, "name", slot.Name())
		return fmt.Errorf("failed to create class slot: %w", err)
	}

	return slot.SetID(model.ID)
}

func (r *ClassSlotRepositoryImpl) GetByID(ctx context.Context, id uint) (*schedule.ClassSlot, error) {
	var model models.ClassSlotModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get class slot", "error", err, "class_slot_id", id)
		return nil, fmt.Errorf("failed to get class slot: %w", err)
	}

	return slotToEntity(&model)
}

func (r *ClassSlotRepositoryImpl) List(ctx context.Context, filter schedule.SlotFilter) ([]*schedule.ClassSlot, error) {
	tx := r.db.WithContext(ctx).Model(&models.ClassSlotModel{})

	if filter.TrainerID != nil {
		tx = tx.Where("trainer_id = ?", *filter.TrainerID)
	}
	if filter.ClientID != nil {
		tx = tx.Joins("JOIN enrollments ON enrollments.class_slot_id = class_slots.id").
			Where("enrollments.client_id = ?", *filter.ClientID)
	}

	var modelList []models.ClassSlotModel
	if err := tx.Order("class_slots.weekday ASC, class_slots.start_time ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list class slots", "error", err)
		return nil, fmt.Errorf("failed to list class slots: %w", err)
	}

	slots := make([]*schedule.ClassSlot, 0, len(modelList))
	for i := range modelList {
		slot, err := slotToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *ClassSlotRepositoryImpl) Update(ctx context.Context, slot *schedule.ClassSlot) error {
	result := r.db.WithContext(ctx).Model(&models.ClassSlotModel{}).
		Where("id = ?", slot.ID()).
		Updates(map[string]interface{}{
			"name":             slot.Name(),
			"weekday":          slot.Weekday(),
			"start_time":       slot.StartTime(),
			"duration_minutes": slot.DurationMinutes(),
			"trainer_id":       slot.TrainerID(),
			"updated_at":       slot.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update class slot", "error", result.Error, "class_slot_id", slot.ID())
		return fmt.Errorf("failed to update class slot: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("class slot not found")
	}

	return nil
}

func (r *ClassSlotRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ClassSlotModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete class slot", "error", result.Error, "class_slot_id", id)
		return fmt.Errorf("failed to delete class slot: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("class slot not found")
	}

	return nil
}

func (r *ClassSlotRepositoryImpl) CountByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClassSlotModel{}).
		Where("trainer_id = ?", trainerID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count class slots", "error", err, "trainer_id", trainerID)
		return 0, fmt.Errorf("failed to count class slots: %w", err)
	}

	return count, nil
}

func slotToModel(slot *schedule.ClassSlot) *models.ClassSlotModel {
	return &models.ClassSlotModel{
		ID:              slot.ID(),
		Name:            slot.Name(),
		Weekday:         slot.Weekday(),
		StartTime:       slot.StartTime(),
		DurationMinutes: slot.DurationMinutes(),
		TrainerID:       slot.TrainerID(),
		CreatedAt:       slot.CreatedAt(),
		UpdatedAt:       slot.UpdatedAt(),
	}
}

func slotToEntity(model *models.ClassSlotModel) (*schedule.ClassSlot, error) {
	return schedule.ReconstructClassSlot(
		model.ID,
		model.Name,
		model.Weekday,
		model.StartTime,
		model.DurationMinutes,
		model.TrainerID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
