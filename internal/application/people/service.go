package people

import (
	"context"

	"gymkeep/internal/domain/person"
	"gymkeep/internal/domain/schedule"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

// Service manages the person roster: listing, contact updates and soft
// deactivation. Records are never hard-deleted so historic subscriptions
// and enrollments stay resolvable.
type Service struct {
	personRepo person.Repository
	slotRepo   schedule.ClassSlotRepository
	logger     logger.Interface
}

func NewService(
	personRepo person.Repository,
	slotRepo schedule.ClassSlotRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		personRepo: personRepo,
		slotRepo:   slotRepo,
		logger:     logger,
	}
}

// List returns people of one kind, optionally narrowed by a free-text
// search phrase. Deactivated records sort after active ones.
func (s *Service) List(ctx context.Context, kind person.Kind, q ListQuery) (*ListResult, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown person kind")
	}

	list, total, err := s.personRepo.List(ctx, person.Filter{
		Kind:     kind,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list people", "error", err, "kind", kind)
		return nil, apperrors.NewInternalError("failed to list people")
	}

	dtos := make([]PersonDTO, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, personToDTO(p))
	}

	return &ListResult{
		People:   dtos,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// Get returns one person of the expected kind.
func (s *Service) Get(ctx context.Context, kind person.Kind, id uint) (*PersonDTO, error) {
	p, err := s.getOfKind(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	dto := personToDTO(p)
	return &dto, nil
}

// UpdateContact changes a person's name and phone number. The national ID
// is immutable once registered.
func (s *Service) UpdateContact(ctx context.Context, kind person.Kind, id uint, cmd UpdateContactCommand) (*PersonDTO, error) {
	p, err := s.getOfKind(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := p.UpdateContact(cmd.FirstName, cmd.LastName, cmd.PhoneNumber); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.personRepo.Update(ctx, p); err != nil {
		s.logger.Errorw("failed to update person", "error", err, "person_id", id)
		return nil, apperrors.NewInternalError("failed to update person")
	}

	dto := personToDTO(p)
	return &dto, nil
}

// Deactivate soft-deletes a person. A trainer still assigned to class
// slots cannot be deactivated; the slots must be reassigned or removed
// first.
func (s *Service) Deactivate(ctx context.Context, kind person.Kind, id uint) error {
	p, err := s.getOfKind(ctx, kind, id)
	if err != nil {
		return err
	}

	if p.Kind() == person.KindTrainer {
		count, err := s.slotRepo.CountByTrainer(ctx, p.ID())
		if err != nil {
			s.logger.Errorw("failed to count trainer class slots", "error", err, "trainer_id", p.ID())
			return apperrors.NewInternalError("failed to deactivate person")
		}
		if count > 0 {
			return apperrors.NewConflictError("trainer still has class slots assigned")
		}
	}

	p.Deactivate()
	if err := s.personRepo.Update(ctx, p); err != nil {
		s.logger.Errorw("failed to deactivate person", "error", err, "person_id", id)
		return apperrors.NewInternalError("failed to deactivate person")
	}

	s.logger.Infow("person deactivated", "person_id", id, "kind", kind)
	return nil
}

// Activate reverses a soft deactivation.
func (s *Service) Activate(ctx context.Context, kind person.Kind, id uint) error {
	p, err := s.getOfKind(ctx, kind, id)
	if err != nil {
		return err
	}

	p.Activate()
	if err := s.personRepo.Update(ctx, p); err != nil {
		s.logger.Errorw("failed to activate person", "error", err, "person_id", id)
		return apperrors.NewInternalError("failed to activate person")
	}

	s.logger.Infow("person activated", "person_id", id, "kind", kind)
	return nil
}

func (s *Service) getOfKind(ctx context.Context, kind person.Kind, id uint) (*person.Person, error) {
	p, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get person", "error", err, "person_id", id)
		return nil, apperrors.NewInternalError("failed to load person")
	}
	if p == nil || p.Kind() != kind {
		return nil, apperrors.NewNotFoundError(string(kind) + " not found")
	}

	return p, nil
}
