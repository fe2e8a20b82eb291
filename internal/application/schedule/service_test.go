package schedule

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appmembership "gymkeep/internal/application/membership"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/persistence/models"
	"gymkeep/internal/infrastructure/repository"
	"gymkeep/internal/shared/biztime"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type fixture struct {
	svc         *Service
	memberships *appmembership.Service
	people      person.Repository
	store       *repository.AccountStore
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	log := logger.NewLogger()
	slotRepo := repository.NewClassSlotRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	personRepo := repository.NewPersonRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	subRepo := repository.NewSubscriptionRepository(db, log)

	memberships := appmembership.NewService(planRepo, subRepo, personRepo, log)

	return &fixture{
		svc:         NewService(slotRepo, enrollmentRepo, personRepo, memberships, log),
		memberships: memberships,
		people:      personRepo,
		store:       repository.NewAccountStore(db, log),
	}
}

func (f *fixture) newPerson(t *testing.T, kind person.Kind, nationalID string) *person.Person {
	t.Helper()
	p, err := person.NewPerson(kind, "Jan", "Wiśniewski", nationalID, "+48123456789")
	require.NoError(t, err)
	require.NoError(t, f.store.ProvisionPerson(context.Background(), p))
	return p
}

// newMember creates a client holding a membership that covers today.
func (f *fixture) newMember(t *testing.T, nationalID string) *person.Person {
	t.Helper()
	ctx := context.Background()

	client := f.newPerson(t, person.KindClient, nationalID)

	plan, err := f.memberships.CreatePlan(ctx, appmembership.PlanCommand{
		Name:         "Monthly " + nationalID,
		PriceCents:   9900,
		DurationDays: 30,
	})
	require.NoError(t, err)

	_, err = f.memberships.Assign(ctx, appmembership.AssignCommand{
		ClientID:  client.ID(),
		PlanID:    plan.ID,
		StartDate: biztime.Today().Format(biztime.DateLayout),
	})
	require.NoError(t, err)

	return client
}

func (f *fixture) newSlot(t *testing.T, name string, weekday int, startTime string, trainerID uint) *SlotDTO {
	t.Helper()
	dto, err := f.svc.CreateSlot(context.Background(), SlotCommand{
		Name:            name,
		Weekday:         weekday,
		StartTime:       startTime,
		DurationMinutes: 60,
		TrainerID:       trainerID,
	})
	require.NoError(t, err)
	return dto
}

func requireAppError(t *testing.T, err error, wantType apperrors.ErrorType) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, wantType, appErr.Type)
	return appErr
}

func TestServiceCreateSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	trainer := f.newPerson(t, person.KindTrainer, "85052267890")

	t.Run("happy path", func(t *testing.T) {
		dto := f.newSlot(t, "Morning Yoga", 0, "08:30", trainer.ID())
		assert.NotZero(t, dto.ID)
		assert.Equal(t, "Jan Wiśniewski", dto.TrainerName)
		assert.Zero(t, dto.Enrolled)
	})

	t.Run("unknown trainer", func(t *testing.T) {
		_, err := f.svc.CreateSlot(ctx, SlotCommand{
			Name: "Spinning", Weekday: 1, StartTime: "18:00", DurationMinutes: 45, TrainerID: 9999,
		})
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})

	t.Run("client cannot lead a class", func(t *testing.T) {
		client := f.newPerson(t, person.KindClient, "90010112345")
		_, err := f.svc.CreateSlot(ctx, SlotCommand{
			Name: "Spinning", Weekday: 1, StartTime: "18:00", DurationMinutes: 45, TrainerID: client.ID(),
		})
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})

	t.Run("deactivated trainer", func(t *testing.T) {
		inactive := f.newPerson(t, person.KindTrainer, "86071122334")
		inactive.Deactivate()
		require.NoError(t, f.people.Update(ctx, inactive))

		_, err := f.svc.CreateSlot(ctx, SlotCommand{
			Name: "Spinning", Weekday: 1, StartTime: "18:00", DurationMinutes: 45, TrainerID: inactive.ID(),
		})
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "trainer record is deactivated", appErr.Message)
	})

	t.Run("invalid slot data", func(t *testing.T) {
		_, err := f.svc.CreateSlot(ctx, SlotCommand{
			Name: "Spinning", Weekday: 8, StartTime: "18:00", DurationMinutes: 45, TrainerID: trainer.ID(),
		})
		requireAppError(t, err, apperrors.ErrorTypeValidation)
	})
}

func TestServiceListSlots(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	yogi := f.newPerson(t, person.KindTrainer, "85052267890")
	lifter := f.newPerson(t, person.KindTrainer, "86071122334")

	f.newSlot(t, "Evening Yoga", 2, "19:00", yogi.ID())
	f.newSlot(t, "Morning Yoga", 2, "08:30", yogi.ID())
	f.newSlot(t, "Deadlift Basics", 0, "17:00", lifter.ID())

	t.Run("ordered by weekday then start time", func(t *testing.T) {
		slots, err := f.svc.ListSlots(ctx, SlotListQuery{})
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "Deadlift Basics", slots[0].Name)
		assert.Equal(t, "Morning Yoga", slots[1].Name)
		assert.Equal(t, "Evening Yoga", slots[2].Name)
	})

	t.Run("filter by trainer", func(t *testing.T) {
		id := yogi.ID()
		slots, err := f.svc.ListSlots(ctx, SlotListQuery{TrainerID: &id})
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("filter by enrolled client", func(t *testing.T) {
		member := f.newMember(t, "90010112345")
		slots, err := f.svc.ListSlots(ctx, SlotListQuery{})
		require.NoError(t, err)
		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slots[0].ID))

		id := member.ID()
		mine, err := f.svc.ListSlots(ctx, SlotListQuery{ClientID: &id})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, slots[0].ID, mine[0].ID)
		assert.Equal(t, int64(1), mine[0].Enrolled)
	})
}

func TestServiceUpdateSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	trainer := f.newPerson(t, person.KindTrainer, "85052267890")
	slot := f.newSlot(t, "Morning Yoga", 0, "08:30", trainer.ID())

	t.Run("reassign to another trainer", func(t *testing.T) {
		other := f.newPerson(t, person.KindTrainer, "86071122334")
		dto, err := f.svc.UpdateSlot(ctx, slot.ID, SlotCommand{
			Name: "Morning Yoga", Weekday: 0, StartTime: "09:00", DurationMinutes: 60, TrainerID: other.ID(),
		})
		require.NoError(t, err)
		assert.Equal(t, other.ID(), dto.TrainerID)
		assert.Equal(t, "09:00", dto.StartTime)
	})

	t.Run("reassignment validates the new trainer", func(t *testing.T) {
		_, err := f.svc.UpdateSlot(ctx, slot.ID, SlotCommand{
			Name: "Morning Yoga", Weekday: 0, StartTime: "09:00", DurationMinutes: 60, TrainerID: 9999,
		})
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, err := f.svc.UpdateSlot(ctx, 9999, SlotCommand{
			Name: "Morning Yoga", Weekday: 0, StartTime: "09:00", DurationMinutes: 60, TrainerID: trainer.ID(),
		})
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})
}

func TestServiceDeleteSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	trainer := f.newPerson(t, person.KindTrainer, "85052267890")

	t.Run("empty slot is removed", func(t *testing.T) {
		slot := f.newSlot(t, "Morning Yoga", 0, "08:30", trainer.ID())
		require.NoError(t, f.svc.DeleteSlot(ctx, slot.ID))

		_, err := f.svc.GetSlot(ctx, slot.ID)
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})

	t.Run("slot with enrollments stays", func(t *testing.T) {
		slot := f.newSlot(t, "Evening Yoga", 3, "19:00", trainer.ID())
		member := f.newMember(t, "90010112345")
		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slot.ID))

		err := f.svc.DeleteSlot(ctx, slot.ID)
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "class slot still has enrolled clients", appErr.Message)

		_, err = f.svc.GetSlot(ctx, slot.ID)
		assert.NoError(t, err)
	})
}

func TestServiceEnroll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	trainer := f.newPerson(t, person.KindTrainer, "85052267890")
	slot := f.newSlot(t, "Morning Yoga", 0, "08:30", trainer.ID())

	t.Run("member joins a class", func(t *testing.T) {
		member := f.newMember(t, "90010112345")
		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slot.ID))

		dto, err := f.svc.GetSlot(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), dto.Enrolled)
	})

	t.Run("joining twice is a conflict", func(t *testing.T) {
		member := f.newMember(t, "91020233344")
		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slot.ID))

		err := f.svc.Enroll(ctx, member.ID(), slot.ID)
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "already enrolled in this class", appErr.Message)
	})

	t.Run("membership required", func(t *testing.T) {
		client := f.newPerson(t, person.KindClient, "92030344455")

		err := f.svc.Enroll(ctx, client.ID(), slot.ID)
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "an active membership is required to enroll", appErr.Message)
	})

	t.Run("unknown client", func(t *testing.T) {
		err := f.svc.Enroll(ctx, 9999, slot.ID)
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})

	t.Run("deactivated client", func(t *testing.T) {
		member := f.newMember(t, "93040455566")
		member.Deactivate()
		require.NoError(t, f.people.Update(ctx, member))

		err := f.svc.Enroll(ctx, member.ID(), slot.ID)
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "client record is deactivated", appErr.Message)
	})

	t.Run("unknown slot", func(t *testing.T) {
		member := f.newMember(t, "94050566677")
		err := f.svc.Enroll(ctx, member.ID(), 9999)
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})
}

func TestServiceUnenroll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	trainer := f.newPerson(t, person.KindTrainer, "85052267890")
	slot := f.newSlot(t, "Morning Yoga", 0, "08:30", trainer.ID())
	member := f.newMember(t, "90010112345")

	t.Run("not enrolled", func(t *testing.T) {
		err := f.svc.Unenroll(ctx, member.ID(), slot.ID)
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "not enrolled in this class", appErr.Message)
	})

	t.Run("leave and rejoin", func(t *testing.T) {
		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slot.ID))
		require.NoError(t, f.svc.Unenroll(ctx, member.ID(), slot.ID))

		dto, err := f.svc.GetSlot(ctx, slot.ID)
		require.NoError(t, err)
		assert.Zero(t, dto.Enrolled)

		require.NoError(t, f.svc.Enroll(ctx, member.ID(), slot.ID))
	})
}
