package person

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeep/internal/shared/authorization"
)

func validPerson(t *testing.T) *Person {
	t.Helper()
	p, err := NewPerson(KindClient, "Anna", "Kowalska", "90010112345", "+48123456789")
	require.NoError(t, err)
	return p
}

func TestNewPerson(t *testing.T) {
	t.Run("valid person", func(t *testing.T) {
		p := validPerson(t)
		assert.Equal(t, KindClient, p.Kind())
		assert.Equal(t, "Anna", p.FirstName())
		assert.Equal(t, "Kowalska", p.LastName())
		assert.Equal(t, "Anna Kowalska", p.FullName())
		assert.Equal(t, "90010112345", p.NationalID())
		assert.True(t, p.Active())
		assert.Nil(t, p.IdentityID())
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := NewPerson(Kind("admin"), "Anna", "Kowalska", "90010112345", "+48123456789")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := NewPerson(KindClient, "", "Kowalska", "90010112345", "+48123456789")
		assert.Error(t, err)

		_, err = NewPerson(KindClient, "Anna", "", "90010112345", "+48123456789")
		assert.Error(t, err)

		_, err = NewPerson(KindClient, "Anna", "Kowalska", "90010112345", "")
		assert.Error(t, err)
	})
}

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		name       string
		nationalID string
		valid      bool
	}{
		{"eleven digits", "90010112345", true},
		{"too short", "9001011234", false},
		{"too long", "900101123456", false},
		{"empty", "", false},
		{"contains letter", "9001011234a", false},
		{"contains space", "90010 12345", false},
		{"contains dash", "900101-2345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPerson(KindClient, "Anna", "Kowalska", tt.nationalID, "+48123456789")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidNationalID)
			}
		})
	}
}

func TestKindForRole(t *testing.T) {
	tests := []struct {
		role authorization.Role
		kind Kind
	}{
		{authorization.RoleClient, KindClient},
		{authorization.RoleTrainer, KindTrainer},
		{authorization.RoleEmployee, KindEmployee},
		{authorization.RoleOwner, KindOwner},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			kind, err := KindForRole(tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := KindForRole(authorization.Role("superuser"))
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestPersonLinkIdentity(t *testing.T) {
	p := validPerson(t)

	require.NoError(t, p.LinkIdentity(42))
	require.NotNil(t, p.IdentityID())
	assert.Equal(t, uint(42), *p.IdentityID())

	assert.Error(t, p.LinkIdentity(43), "relinking must be rejected")
	assert.Equal(t, uint(42), *p.IdentityID())

	fresh := validPerson(t)
	assert.Error(t, fresh.LinkIdentity(0))
}

func TestPersonUpdateContact(t *testing.T) {
	p := validPerson(t)

	t.Run("valid update", func(t *testing.T) {
		err := p.UpdateContact("Maria", "Nowak", "+48987654321")
		require.NoError(t, err)
		assert.Equal(t, "Maria", p.FirstName())
		assert.Equal(t, "Nowak", p.LastName())
		assert.Equal(t, "+48987654321", p.PhoneNumber())
	})

	t.Run("national ID survives updates", func(t *testing.T) {
		assert.Equal(t, "90010112345", p.NationalID())
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		assert.Error(t, p.UpdateContact("", "Nowak", "+48987654321"))
		assert.Error(t, p.UpdateContact("Maria", "", "+48987654321"))
		assert.Error(t, p.UpdateContact("Maria", "Nowak", ""))
		assert.Equal(t, "Maria", p.FirstName())
	})
}

func TestPersonActivation(t *testing.T) {
	p := validPerson(t)
	require.True(t, p.Active())

	p.Deactivate()
	assert.False(t, p.Active())

	p.Activate()
	assert.True(t, p.Active())
}

func TestReconstructPerson(t *testing.T) {
	now := time.Now().UTC()
	identityID := uint(7)

	t.Run("valid reconstruction", func(t *testing.T) {
		p, err := ReconstructPerson(3, KindTrainer, "Jan", "Wiśniewski", "85052267890", "+48111222333",
			false, &identityID, now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(3), p.ID())
		assert.Equal(t, KindTrainer, p.Kind())
		assert.False(t, p.Active())
		require.NotNil(t, p.IdentityID())
		assert.Equal(t, uint(7), *p.IdentityID())
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		_, err := ReconstructPerson(0, KindTrainer, "Jan", "Wiśniewski", "85052267890", "+48111222333",
			true, nil, now, now)
		assert.Error(t, err)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := ReconstructPerson(3, Kind("ghost"), "Jan", "Wiśniewski", "85052267890", "+48111222333",
			true, nil, now, now)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}
