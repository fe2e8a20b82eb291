package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymkeep/internal/domain/membership"
	"gymkeep/internal/infrastructure/persistence/models"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/query"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// planSortColumns whitelists columns a caller may sort plan listings by.
var planSortColumns = map[string]bool{
	"name":          true,
	"price_cents":   true,
	"duration_days": true,
	"created_at":    true,
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) membership.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *membership.Plan) error {
	model := planToModel(plan)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create membership plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create membership plan: %w", err)
	}

	return plan.SetID(model.ID)
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Plan, error) {
	var model models.MembershipPlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get membership plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get membership plan: %w", err)
	}

	return planToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter membership.PlanFilter) ([]*membership.Plan, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.MembershipPlanModel{})

	if filter.ActiveOnly {
		tx = tx.Where("active = ?", true)
	}
	tx = query.ApplySearch(tx, filter.Search, "name")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count membership plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count membership plans: %w", err)
	}

	page := query.PageFilter{Page: filter.Page, PageSize: filter.PageSize}

	// Retired plans always sink below active ones, whatever the sort.
	orderClause := "active DESC, name ASC"
	sort := query.SortFilter{SortBy: filter.SortBy, SortOrder: filter.SortOrder}
	if planSortColumns[sort.SortBy] {
		orderClause = "active DESC, " + sort.OrderClause()
	}

	var modelList []models.MembershipPlanModel
	if err := tx.Order(orderClause).
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list membership plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list membership plans: %w", err)
	}

	plans := make([]*membership.Plan, 0, len(modelList))
	for i := range modelList {
		plan, err := planToEntity(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}

	return plans, total, nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *membership.Plan) error {
	result := r.db.WithContext(ctx).Model(&models.MembershipPlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":          plan.Name(),
			"price_cents":   plan.PriceCents(),
			"duration_days": plan.DurationDays(),
			"active":        plan.Active(),
			"updated_at":    plan.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update membership plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update membership plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("membership plan not found")
	}

	return nil
}

func planToModel(plan *membership.Plan) *models.MembershipPlanModel {
	return &models.MembershipPlanModel{
		ID:           plan.ID(),
		Name:         plan.Name(),
		PriceCents:   plan.PriceCents(),
		DurationDays: plan.DurationDays(),
		Active:       plan.Active(),
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}
}

func planToEntity(model *models.MembershipPlanModel) (*membership.Plan, error) {
	return membership.ReconstructPlan(
		model.ID,
		model.Name,
		model.PriceCents,
		model.DurationDays,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
