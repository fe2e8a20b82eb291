package schedule

import "context"

// SlotFilter narrows class slot listings. TrainerID keeps slots owned by one
// trainer; ClientID keeps slots the client is enrolled in. Results are
// ordered by weekday then start time.
type SlotFilter struct {
	TrainerID *uint
	ClientID  *uint
}

type ClassSlotRepository interface {
	Create(ctx context.Context, slot *ClassSlot) error
	GetByID(ctx context.Context, id uint) (*ClassSlot, error)
	List(ctx context.Context, filter SlotFilter) ([]*ClassSlot, error)
	Update(ctx context.Context, slot *ClassSlot) error
	Delete(ctx context.Context, id uint) error
	CountByTrainer(ctx context.Context, trainerID uint) (int64, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	// FindByClientAndSlot returns (nil, nil) when the pair is not enrolled.
	FindByClientAndSlot(ctx context.Context, clientID, classSlotID uint) (*Enrollment, error)
	ListByClient(ctx context.Context, clientID uint) ([]*Enrollment, error)
	Delete(ctx context.Context, id uint) error
	CountBySlot(ctx context.Context, classSlotID uint) (int64, error)
}
