// Package authorization holds the role lattice and the request guards built
// on top of it. The allow/deny decision is a pure function of the
// (caller role, required role) pair so it can be tested without any HTTP
// machinery.
package authorization

type Role string

const (
	RoleClient   Role = "client"
	RoleTrainer  Role = "trainer"
	RoleEmployee Role = "employee"
	RoleOwner    Role = "owner"
)

// satisfied maps each role to the minimum-role requirements it fulfills.
// The roles form a small capability lattice, not a plain integer ladder:
// trainers extend client-level access with class-slot ownership, employees
// hold the operational set (which covers class-slot management), and owners
// additionally manage the plan catalog and staff.
var satisfied = map[Role]map[Role]bool{
	RoleClient:   {RoleClient: true},
	RoleTrainer:  {RoleClient: true, RoleTrainer: true},
	RoleEmployee: {RoleClient: true, RoleTrainer: true, RoleEmployee: true},
	RoleOwner:    {RoleClient: true, RoleTrainer: true, RoleEmployee: true, RoleOwner: true},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := satisfied[r]
	return ok
}

// Satisfies reports whether a caller holding role r may perform an operation
// that declares required as its minimum role. Unknown roles never satisfy
// anything.
func (r Role) Satisfies(required Role) bool {
	return satisfied[r][required]
}

// StaffRoles are the roles an owner may provision besides clients.
func StaffRoles() []Role {
	return []Role{RoleTrainer, RoleEmployee, RoleOwner}
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
