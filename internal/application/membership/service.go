package membership

import (
	"context"

	"gymkeep/internal/domain/membership"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/shared/biztime"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type Service struct {
	planRepo   membership.PlanRepository
	subRepo    membership.SubscriptionRepository
	personRepo person.Repository
	logger     logger.Interface
}

func NewService(
	planRepo membership.PlanRepository,
	subRepo membership.SubscriptionRepository,
	personRepo person.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		planRepo:   planRepo,
		subRepo:    subRepo,
		personRepo: personRepo,
		logger:     logger,
	}
}

func (s *Service) CreatePlan(ctx context.Context, cmd PlanCommand) (*PlanDTO, error) {
	plan, err := membership.NewPlan(cmd.Name, cmd.PriceCents, cmd.DurationDays)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, apperrors.NewInternalError("failed to create membership plan")
	}

	s.logger.Infow("membership plan created", "plan_id", plan.ID(), "name", plan.Name())

	dto := planToDTO(plan)
	return &dto, nil
}

func (s *Service) GetPlan(ctx context.Context, id uint) (*PlanDTO, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := planToDTO(plan)
	return &dto, nil
}

func (s *Service) ListPlans(ctx context.Context, q PlanListQuery) (*PlanListResult, error) {
	plans, total, err := s.planRepo.List(ctx, membership.PlanFilter{
		Search:     q.Search,
		ActiveOnly: q.ActiveOnly,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list plans", "error", err)
		return nil, apperrors.NewInternalError("failed to list membership plans")
	}

	dtos := make([]PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, planToDTO(plan))
	}

	return &PlanListResult{
		Plans:    dtos,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// UpdatePlan edits a plan in place. Duration changes apply retroactively:
// every subscription window, past or present, is derived from the plan's
// current duration at read time.
func (s *Service) UpdatePlan(ctx context.Context, id uint, cmd PlanCommand) (*PlanDTO, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := plan.Update(cmd.Name, cmd.PriceCents, cmd.DurationDays); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		s.logger.Errorw("failed to update plan", "error", err, "plan_id", id)
		return nil, apperrors.NewInternalError("failed to update membership plan")
	}

	dto := planToDTO(plan)
	return &dto, nil
}

// DeactivatePlan retires a plan from sale. Existing subscriptions keep
// referencing it and remain valid until their windows lapse.
func (s *Service) DeactivatePlan(ctx context.Context, id uint) error {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return err
	}

	plan.Deactivate()
	if err := s.planRepo.Update(ctx, plan); err != nil {
		s.logger.Errorw("failed to deactivate plan", "error", err, "plan_id", id)
		return apperrors.NewInternalError("failed to deactivate membership plan")
	}

	s.logger.Infow("membership plan deactivated", "plan_id", id)
	return nil
}

// Assign starts a subscription for a client on the given date. Only
// active plans can be sold, and only to active client records.
func (s *Service) Assign(ctx context.Context, cmd AssignCommand) (*SubscriptionDTO, error) {
	client, err := s.personRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		s.logger.Errorw("failed to get client", "error", err, "client_id", cmd.ClientID)
		return nil, apperrors.NewInternalError("failed to assign membership")
	}
	if client == nil || client.Kind() != person.KindClient {
		return nil, apperrors.NewNotFoundError("client not found")
	}
	if !client.Active() {
		return nil, apperrors.NewConflictError("client record is deactivated")
	}

	plan, err := s.getPlan(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.Active() {
		return nil, apperrors.NewConflictError(membership.ErrPlanInactive.Error())
	}

	startDate, err := biztime.ParseDate(cmd.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start date must be in YYYY-MM-DD format")
	}

	sub, err := membership.NewSubscription(cmd.ClientID, cmd.PlanID, startDate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		s.logger.Errorw("failed to create subscription", "error", err,
			"client_id", cmd.ClientID, "plan_id", cmd.PlanID)
		return nil, apperrors.NewInternalError("failed to assign membership")
	}

	s.logger.Infow("membership assigned",
		"subscription_id", sub.ID(), "client_id", cmd.ClientID, "plan_id", cmd.PlanID)

	dto := subscriptionToDTO(membership.ClientSubscription{Subscription: sub, Plan: plan})
	return &dto, nil
}

// ListForClient returns the client's subscription history, newest first,
// with activity derived at call time.
func (s *Service) ListForClient(ctx context.Context, clientID uint) ([]SubscriptionDTO, error) {
	subs, err := s.subRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Errorw("failed to list subscriptions", "error", err, "client_id", clientID)
		return nil, apperrors.NewInternalError("failed to list memberships")
	}

	dtos := make([]SubscriptionDTO, 0, len(subs))
	for _, cs := range subs {
		dtos = append(dtos, subscriptionToDTO(cs))
	}

	return dtos, nil
}

// HasActiveMembership reports whether any of the client's subscription
// windows covers today.
func (s *Service) HasActiveMembership(ctx context.Context, clientID uint) (bool, error) {
	subs, err := s.subRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Errorw("failed to check membership", "error", err, "client_id", clientID)
		return false, apperrors.NewInternalError("failed to check membership")
	}

	for _, cs := range subs {
		if cs.Subscription.IsActive(cs.Plan) {
			return true, nil
		}
	}

	return false, nil
}

func (s *Service) getPlan(ctx context.Context, id uint) (*membership.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get plan", "error", err, "plan_id", id)
		return nil, apperrors.NewInternalError("failed to load membership plan")
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError(membership.ErrPlanNotFound.Error())
	}

	return plan, nil
}
