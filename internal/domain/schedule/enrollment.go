package schedule

import (
	"fmt"
	"time"
)

// Enrollment registers one client into one class slot. At most one enrollment
// exists per (client, slot) pair; the storage layer backs this with a
// composite unique index so the pre-insert check cannot be raced.
type Enrollment struct {
	id          uint
	clientID    uint
	classSlotID uint
	createdAt   time.Time
}

func NewEnrollment(clientID, classSlotID uint) (*Enrollment, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if classSlotID == 0 {
		return nil, fmt.Errorf("class slot ID is required")
	}
	return &Enrollment{
		clientID:    clientID,
		classSlotID: classSlotID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructEnrollment rebuilds an enrollment from persistence.
func ReconstructEnrollment(id, clientID, classSlotID uint, createdAt time.Time) (*Enrollment, error) {
	if id == 0 {
		return nil, fmt.Errorf("enrollment ID cannot be zero")
	}
	return &Enrollment{
		id:          id,
		clientID:    clientID,
		classSlotID: classSlotID,
		createdAt:   createdAt,
	}, nil
}

func (e *Enrollment) ID() uint             { return e.id }
func (e *Enrollment) ClientID() uint       { return e.clientID }
func (e *Enrollment) ClassSlotID() uint    { return e.classSlotID }
func (e *Enrollment) CreatedAt() time.Time { return e.createdAt }

func (e *Enrollment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("enrollment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("enrollment ID cannot be zero")
	}
	e.id = id
	return nil
}
