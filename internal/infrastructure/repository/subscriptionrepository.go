package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/membership"
	"gymkeep/internal/infrastructure/persistence/models"
	"gymkeep/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) membership.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *membership.Subscription) error {
	model := &models.SubscriptionModel{
		ClientID:  sub.ClientID(),
		PlanID:    sub.PlanID(),
		StartDate: sub.StartDate(),
		CreatedAt: sub.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err,
			"client_id", sub.ClientID(), "plan_id", sub.PlanID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub.SetID(model.ID)
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return subscriptionToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByClient(ctx context.Context, clientID uint) ([]membership.ClientSubscription, error) {
	var modelList []models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("client_id = ?", clientID).
		Order("start_date DESC, id DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	result := make([]membership.ClientSubscription, 0, len(modelList))
	for i := range modelList {
		sub, err := subscriptionToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		plan, err := planToEntity(&modelList[i].Plan)
		if err != nil {
			return nil, err
		}
		result = append(result, membership.ClientSubscription{Subscription: sub, Plan: plan})
	}

	return result, nil
}

func subscriptionToEntity(model *models.SubscriptionModel) (*membership.Subscription, error) {
	return membership.ReconstructSubscription(
		model.ID,
		model.ClientID,
		model.PlanID,
		model.StartDate,
		model.CreatedAt,
	)
}
