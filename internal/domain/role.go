package domain

// Role is the closed set of permission levels. A lower level means more
// privilege: ADMIN < MANAGER < USER.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

const invalidLevel = -1

// Level returns the numeric rank of a role, or -1 for an unknown role.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleManager:
		return 2
	case RoleUser:
		return 3
	}
	return invalidLevel
}

func (r Role) Valid() bool {
	return r.Level() != invalidLevel
}

func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleManager:
		return "Manager"
	case RoleUser:
		return "Clerk"
	}
	return ""
}

// IsPermitted reports whether actor holds at least the privilege of
// required. Invalid roles never pass: an actor may act on a target role only
// when its own level is numerically lower or equal.
func IsPermitted(actor, required Role) bool {
	if !actor.Valid() || !required.Valid() {
		return false
	}
	return actor.Level() <= required.Level()
}

func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleUser}
}
