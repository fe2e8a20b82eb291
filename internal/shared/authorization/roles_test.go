package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		holder   Role
		required Role
		want     bool
	}{
		{RoleClient, RoleClient, true},
		{RoleClient, RoleTrainer, false},
		{RoleClient, RoleEmployee, false},
		{RoleClient, RoleOwner, false},

		{RoleTrainer, RoleClient, true},
		{RoleTrainer, RoleTrainer, true},
		{RoleTrainer, RoleEmployee, false},
		{RoleTrainer, RoleOwner, false},

		{RoleEmployee, RoleClient, true},
		{RoleEmployee, RoleTrainer, true},
		{RoleEmployee, RoleEmployee, true},
		{RoleEmployee, RoleOwner, false},

		{RoleOwner, RoleClient, true},
		{RoleOwner, RoleTrainer, true},
		{RoleOwner, RoleEmployee, true},
		{RoleOwner, RoleOwner, true},
	}

	for _, tt := range tests {
		t.Run(tt.holder.String()+"_vs_"+tt.required.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.holder.Satisfies(tt.required))
		})
	}
}

func TestRoleSatisfiesUnknownRole(t *testing.T) {
	assert.False(t, Role("janitor").Satisfies(RoleClient))
	assert.False(t, RoleOwner.Satisfies(Role("janitor")))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"client", RoleClient, true},
		{"trainer", RoleTrainer, true},
		{"employee", RoleEmployee, true},
		{"owner", RoleOwner, true},
		{"Client", "", false},
		{"", "", false},
		{"admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, role)
			}
		})
	}
}

func TestStaffRoles(t *testing.T) {
	staff := StaffRoles()
	assert.Contains(t, staff, RoleTrainer)
	assert.Contains(t, staff, RoleEmployee)
	assert.Contains(t, staff, RoleOwner)
	assert.NotContains(t, staff, RoleClient)
}
