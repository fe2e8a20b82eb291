package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnrollment(t *testing.T) {
	t.Run("valid enrollment", func(t *testing.T) {
		e, err := NewEnrollment(1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(1), e.ClientID())
		assert.Equal(t, uint(2), e.ClassSlotID())
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("missing client rejected", func(t *testing.T) {
		_, err := NewEnrollment(0, 2)
		assert.Error(t, err)
	})

	t.Run("missing slot rejected", func(t *testing.T) {
		_, err := NewEnrollment(1, 0)
		assert.Error(t, err)
	})
}

func TestReconstructEnrollment(t *testing.T) {
	now := time.Now().UTC()

	e, err := ReconstructEnrollment(9, 1, 2, now)
	require.NoError(t, err)
	assert.Equal(t, uint(9), e.ID())
	assert.Error(t, e.SetID(10))

	_, err = ReconstructEnrollment(0, 1, 2, now)
	assert.Error(t, err)
}
