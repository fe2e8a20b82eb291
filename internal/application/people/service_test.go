package people

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymkeep/internal/domain/person"
	"gymkeep/internal/domain/schedule"
	"gymkeep/internal/infrastructure/persistence/models"
	"gymkeep/internal/infrastructure/repository"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type fixture struct {
	svc    *Service
	people person.Repository
	slots  schedule.ClassSlotRepository
	store  *repository.AccountStore
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
	personRepo := repository.NewPersonRepository(db, log)
	slotRepo := repository.NewClassSlotRepository(db, log)

	return &fixture{
		svc:    NewService(personRepo, slotRepo, log),
		people: personRepo,
		slots:  slotRepo,
		store:  repository.NewAccountStore(db, log),
	}
}

func (f *fixture) newPerson(t *testing.T, kind person.Kind, first, last, nationalID string) *person.Person {
	t.Helper()
	p, err := person.NewPerson(kind, first, last, nationalID, "+48123456789")
	require.NoError(t, err)
	require.NoError(t, f.store.ProvisionPerson(context.Background(), p))
	return p
}

func requireAppError(t *testing.T, err error, wantType apperrors.ErrorType) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, wantType, appErr.Type)
	return appErr
}

func TestServiceList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.newPerson(t, person.KindClient, "Anna", "Kowalska", "90010112345")
	f.newPerson(t, person.KindClient, "Maria", "Nowak", "91020233344")
	f.newPerson(t, person.KindTrainer, "Jan", "Kowalski", "85052267890")
	retired := f.newPerson(t, person.KindClient, "Piotr", "Adamski", "92030344455")
	require.NoError(t, f.svc.Deactivate(ctx, person.KindClient, retired.ID()))

	t.Run("only the requested kind", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)

		trainers, err := f.svc.List(ctx, person.KindTrainer, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), trainers.Total)
	})

	t.Run("active sort before deactivated", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{})
		require.NoError(t, err)
		require.Len(t, result.People, 3)
		assert.Equal(t, "Kowalska", result.People[0].LastName)
		assert.Equal(t, "Nowak", result.People[1].LastName)
		assert.Equal(t, "Adamski", result.People[2].LastName, "deactivated records sort last")
	})

	t.Run("search by name fragment", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{Search: "kowal"})
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, "Kowalska", result.People[0].LastName)
	})

	t.Run("search by national ID", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{Search: "910202"})
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, "Nowak", result.People[0].LastName)
	})

	t.Run("multi-term search narrows", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{Search: "anna kowal"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)

		none, err := f.svc.List(ctx, person.KindClient, ListQuery{Search: "anna nowak"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), none.Total)
	})

	t.Run("pagination", func(t *testing.T) {
		result, err := f.svc.List(ctx, person.KindClient, ListQuery{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)
		assert.Len(t, result.People, 1)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := f.svc.List(ctx, person.Kind("ghost"), ListQuery{})
		requireAppError(t, err, apperrors.ErrorTypeValidation)
	})
}

func TestServiceGet(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	client := f.newPerson(t, person.KindClient, "Anna", "Kowalska", "90010112345")

	t.Run("existing person", func(t *testing.T) {
		dto, err := f.svc.Get(ctx, person.KindClient, client.ID())
		require.NoError(t, err)
		assert.Equal(t, "Anna", dto.FirstName)
		assert.False(t, dto.HasLogin)
	})

	t.Run("wrong kind reads as missing", func(t *testing.T) {
		_, err := f.svc.Get(ctx, person.KindTrainer, client.ID())
		appErr := requireAppError(t, err, apperrors.ErrorTypeNotFound)
		assert.Equal(t, "trainer not found", appErr.Message)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := f.svc.Get(ctx, person.KindClient, 9999)
		requireAppError(t, err, apperrors.ErrorTypeNotFound)
	})
}

func TestServiceUpdateContact(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	client := f.newPerson(t, person.KindClient, "Anna", "Kowalska", "90010112345")

	t.Run("valid update persists", func(t *testing.T) {
		dto, err := f.svc.UpdateContact(ctx, person.KindClient, client.ID(), UpdateContactCommand{
			FirstName:   "Anna Maria",
			LastName:    "Kowalska-Nowak",
			PhoneNumber: "+48987654321",
		})
		require.NoError(t, err)
		assert.Equal(t, "Anna Maria", dto.FirstName)

		stored, err := f.people.GetByID(ctx, client.ID())
		require.NoError(t, err)
		assert.Equal(t, "Kowalska-Nowak", stored.LastName())
		assert.Equal(t, "90010112345", stored.NationalID(), "national ID never changes")
	})

	t.Run("empty field rejected", func(t *testing.T) {
		_, err := f.svc.UpdateContact(ctx, person.KindClient, client.ID(), UpdateContactCommand{
			FirstName: "", LastName: "Kowalska", PhoneNumber: "+48987654321",
		})
		requireAppError(t, err, apperrors.ErrorTypeValidation)
	})
}

func TestServiceDeactivate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	t.Run("client round trip", func(t *testing.T) {
		client := f.newPerson(t, person.KindClient, "Anna", "Kowalska", "90010112345")

		require.NoError(t, f.svc.Deactivate(ctx, person.KindClient, client.ID()))
		dto, err := f.svc.Get(ctx, person.KindClient, client.ID())
		require.NoError(t, err)
		assert.False(t, dto.Active)

		require.NoError(t, f.svc.Activate(ctx, person.KindClient, client.ID()))
		dto, err = f.svc.Get(ctx, person.KindClient, client.ID())
		require.NoError(t, err)
		assert.True(t, dto.Active)
	})

	t.Run("trainer with assigned slots stays active", func(t *testing.T) {
		trainer := f.newPerson(t, person.KindTrainer, "Jan", "Kowalski", "85052267890")

		slot, err := schedule.NewClassSlot("Morning Yoga", 0, "08:30", 60, trainer.ID())
		require.NoError(t, err)
		require.NoError(t, f.slots.Create(ctx, slot))

		err = f.svc.Deactivate(ctx, person.KindTrainer, trainer.ID())
		appErr := requireAppError(t, err, apperrors.ErrorTypeConflict)
		assert.Equal(t, "trainer still has class slots assigned", appErr.Message)

		t.Run("removing the slot unblocks deactivation", func(t *testing.T) {
			require.NoError(t, f.slots.Delete(ctx, slot.ID()))
			require.NoError(t, f.svc.Deactivate(ctx, person.KindTrainer, trainer.ID()))
		})
	})
}
