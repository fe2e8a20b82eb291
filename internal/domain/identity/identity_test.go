package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeep/internal/shared/authorization"
)

func TestNewIdentity(t *testing.T) {
	t.Run("valid identity", func(t *testing.T) {
		ident, err := NewIdentity("akowalska", "anna@example.com", authorization.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "akowalska", ident.Login())
		assert.Equal(t, "anna@example.com", ident.Email())
		assert.Equal(t, authorization.RoleClient, ident.Role())
		assert.Empty(t, ident.PasswordHash())
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		ident, err := NewIdentity("  akowalska ", " anna@example.com ", authorization.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "akowalska", ident.Login())
		assert.Equal(t, "anna@example.com", ident.Email())
	})

	t.Run("missing login", func(t *testing.T) {
		_, err := NewIdentity("", "anna@example.com", authorization.RoleClient)
		assert.Error(t, err)

		_, err = NewIdentity("   ", "anna@example.com", authorization.RoleClient)
		assert.Error(t, err)
	})

	t.Run("login length cap", func(t *testing.T) {
		_, err := NewIdentity(strings.Repeat("a", 26), "anna@example.com", authorization.RoleClient)
		assert.Error(t, err)

		_, err = NewIdentity(strings.Repeat("a", 25), "anna@example.com", authorization.RoleClient)
		assert.NoError(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := NewIdentity("akowalska", "", authorization.RoleClient)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewIdentity("akowalska", "anna@example.com", authorization.Role("admin"))
		assert.ErrorIs(t, err, ErrUnknownRole)
	})
}

func TestIdentitySetPasswordHash(t *testing.T) {
	ident, err := NewIdentity("akowalska", "anna@example.com", authorization.RoleClient)
	require.NoError(t, err)

	require.NoError(t, ident.SetPasswordHash("$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"))
	assert.NotEmpty(t, ident.PasswordHash())

	assert.Error(t, ident.SetPasswordHash(""))
}

func TestIdentitySetID(t *testing.T) {
	ident, err := NewIdentity("akowalska", "anna@example.com", authorization.RoleClient)
	require.NoError(t, err)

	require.NoError(t, ident.SetID(3))
	assert.Equal(t, uint(3), ident.ID())
	assert.Error(t, ident.SetID(4))

	fresh, err := NewIdentity("bnowak", "b@example.com", authorization.RoleClient)
	require.NoError(t, err)
	assert.Error(t, fresh.SetID(0))
}

func TestReconstructIdentity(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid reconstruction", func(t *testing.T) {
		ident, err := ReconstructIdentity(3, "akowalska", "anna@example.com", "hash", authorization.RoleOwner, now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(3), ident.ID())
		assert.Equal(t, authorization.RoleOwner, ident.Role())
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		_, err := ReconstructIdentity(0, "akowalska", "anna@example.com", "hash", authorization.RoleOwner, now, now)
		assert.Error(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := ReconstructIdentity(3, "akowalska", "anna@example.com", "hash", authorization.Role("ghost"), now, now)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})
}
