package schedule

import (
	"context"
	"errors"

	"gymkeep/internal/domain/person"
	"gymkeep/internal/domain/schedule"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

// MembershipChecker reports whether a client currently holds an active
// membership. Enrollment is gated on it.
type MembershipChecker interface {
	HasActiveMembership(ctx context.Context, clientID uint) (bool, error)
}

type Service struct {
	slotRepo       schedule.ClassSlotRepository
	enrollmentRepo schedule.EnrollmentRepository
	personRepo     person.Repository
	memberships    MembershipChecker
	logger         logger.Interface
}

func NewService(
	slotRepo schedule.ClassSlotRepository,
	enrollmentRepo schedule.EnrollmentRepository,
	personRepo person.Repository,
	memberships MembershipChecker,
	logger logger.Interface,
) *Service {
	return &Service{
		slotRepo:       slotRepo,
		enrollmentRepo: enrollmentRepo,
		personRepo:     personRepo,
		memberships:    memberships,
		logger:         logger,
	}
}

// CreateSlot schedules a weekly class led by an active trainer.
func (s *Service) CreateSlot(ctx context.Context, cmd SlotCommand) (*SlotDTO, error) {
	if err := s.checkTrainer(ctx, cmd.TrainerID); err != nil {
		return nil, err
	}

	slot, err := schedule.NewClassSlot(cmd.Name, cmd.Weekday, cmd.StartTime, cmd.DurationMinutes, cmd.TrainerID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		s.logger.Errorw("failed to create class slot", "error", err, "name", cmd.Name)
		return nil, apperrors.NewInternalError("failed to create class slot")
	}

	s.logger.Infow("class slot created", "class_slot_id", slot.ID(), "trainer_id", cmd.TrainerID)

	dto := slotToDTO(slot)
	return &dto, nil
}

func (s *Service) GetSlot(ctx context.Context, id uint) (*SlotDTO, error) {
	slot, err := s.getSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := s.decorate(ctx, slot)
	return &dto, nil
}

// ListSlots returns the weekly schedule ordered by weekday and start
// time. TrainerID narrows to one trainer's classes; ClientID narrows to
// classes the client is enrolled in.
func (s *Service) ListSlots(ctx context.Context, q SlotListQuery) ([]SlotDTO, error) {
	slots, err := s.slotRepo.List(ctx, schedule.SlotFilter{
		TrainerID: q.TrainerID,
		ClientID:  q.ClientID,
	})
	if err != nil {
		s.logger.Errorw("failed to list class slots", "error", err)
		return nil, apperrors.NewInternalError("failed to list class slots")
	}

	dtos := make([]SlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, s.decorate(ctx, slot))
	}

	return dtos, nil
}

func (s *Service) UpdateSlot(ctx context.Context, id uint, cmd SlotCommand) (*SlotDTO, error) {
	slot, err := s.getSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	if slot.TrainerID() != cmd.TrainerID {
		if err := s.checkTrainer(ctx, cmd.TrainerID); err != nil {
			return nil, err
		}
	}

	if err := slot.Update(cmd.Name, cmd.Weekday, cmd.StartTime, cmd.DurationMinutes, cmd.TrainerID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		s.logger.Errorw("failed to update class slot", "error", err, "class_slot_id", id)
		return nil, apperrors.NewInternalError("failed to update class slot")
	}

	dto := s.decorate(ctx, slot)
	return &dto, nil
}

// DeleteSlot removes a class from the schedule. A slot with enrolled
// clients is kept until they leave or are removed.
func (s *Service) DeleteSlot(ctx context.Context, id uint) error {
	if _, err := s.getSlot(ctx, id); err != nil {
		return err
	}

	count, err := s.enrollmentRepo.CountBySlot(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to count enrollments", "error", err, "class_slot_id", id)
		return apperrors.NewInternalError("failed to delete class slot")
	}
	if count > 0 {
		return apperrors.NewConflictError(schedule.ErrSlotHasEnrollments.Error())
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete class slot", "error", err, "class_slot_id", id)
		return apperrors.NewInternalError("failed to delete class slot")
	}

	s.logger.Infow("class slot deleted", "class_slot_id", id)
	return nil
}

// Enroll joins a client to a class slot. The client record must be
// active, hold an active membership, and not be enrolled yet.
func (s *Service) Enroll(ctx context.Context, clientID, slotID uint) error {
	client, err := s.personRepo.GetByID(ctx, clientID)
	if err != nil {
		s.logger.Errorw("failed to get client", "error", err, "client_id", clientID)
		return apperrors.NewInternalError("failed to enroll")
	}
	if client == nil || client.Kind() != person.KindClient {
		return apperrors.NewNotFoundError("client not found")
	}
	if !client.Active() {
		return apperrors.NewConflictError("client record is deactivated")
	}

	if _, err := s.getSlot(ctx, slotID); err != nil {
		return err
	}

	active, err := s.memberships.HasActiveMembership(ctx, clientID)
	if err != nil {
		return err
	}
	if !active {
		return apperrors.NewConflictError("an active membership is required to enroll")
	}

	existing, err := s.enrollmentRepo.FindByClientAndSlot(ctx, clientID, slotID)
	if err != nil {
		s.logger.Errorw("failed to check enrollment", "error", err,
			"client_id", clientID, "class_slot_id", slotID)
		return apperrors.NewInternalError("failed to enroll")
	}
	if existing != nil {
		return apperrors.NewConflictError(schedule.ErrAlreadyEnrolled.Error())
	}

	enrollment, err := schedule.NewEnrollment(clientID, slotID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		// The unique index catches the race the pre-check cannot.
		if errors.Is(err, schedule.ErrAlreadyEnrolled) {
			return apperrors.NewConflictError(schedule.ErrAlreadyEnrolled.Error())
		}
		s.logger.Errorw("failed to create enrollment", "error", err,
			"client_id", clientID, "class_slot_id", slotID)
		return apperrors.NewInternalError("failed to enroll")
	}

	s.logger.Infow("client enrolled", "client_id", clientID, "class_slot_id", slotID)
	return nil
}

// Unenroll removes a client from a class slot.
func (s *Service) Unenroll(ctx context.Context, clientID, slotID uint) error {
	if _, err := s.getSlot(ctx, slotID); err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.FindByClientAndSlot(ctx, clientID, slotID)
	if err != nil {
		s.logger.Errorw("failed to check enrollment", "error", err,
			"client_id", clientID, "class_slot_id", slotID)
		return apperrors.NewInternalError("failed to leave class")
	}
	if enrollment == nil {
		return apperrors.NewConflictError(schedule.ErrNotEnrolled.Error())
	}

	if err := s.enrollmentRepo.Delete(ctx, enrollment.ID()); err != nil {
		s.logger.Errorw("failed to delete enrollment", "error", err, "enrollment_id", enrollment.ID())
		return apperrors.NewInternalError("failed to leave class")
	}

	s.logger.Infow("client unenrolled", "client_id", clientID, "class_slot_id", slotID)
	return nil
}

func (s *Service) getSlot(ctx context.Context, id uint) (*schedule.ClassSlot, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get class slot", "error", err, "class_slot_id", id)
		return nil, apperrors.NewInternalError("failed to load class slot")
	}
	if slot == nil {
		return nil, apperrors.NewNotFoundError(schedule.ErrSlotNotFound.Error())
	}

	return slot, nil
}

func (s *Service) checkTrainer(ctx context.Context, trainerID uint) error {
	trainer, err := s.personRepo.GetByID(ctx, trainerID)
	if err != nil {
		s.logger.Errorw("failed to get trainer", "error", err, "trainer_id", trainerID)
		return apperrors.NewInternalError("failed to load trainer")
	}
	if trainer == nil || trainer.Kind() != person.KindTrainer {
		return apperrors.NewNotFoundError("trainer not found")
	}
	if !trainer.Active() {
		return apperrors.NewConflictError("trainer record is deactivated")
	}

	return nil
}

// decorate fills the list-view extras: trainer display name and current
// enrollment count. Lookup failures degrade to the bare slot.
func (s *Service) decorate(ctx context.Context, slot *schedule.ClassSlot) SlotDTO {
	dto := slotToDTO(slot)

	if trainer, err := s.personRepo.GetByID(ctx, slot.TrainerID()); err == nil && trainer != nil {
		dto.TrainerName = trainer.FullName()
	}
	if count, err := s.enrollmentRepo.CountBySlot(ctx, slot.ID()); err == nil {
		dto.Enrolled = count
	}

	return dto
}
