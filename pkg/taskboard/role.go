package taskboard

import "fmt"

type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleProjectManager Role = "ProjectManager"
	RoleEmployee       Role = "Employee"
)

var Roles = []Role{RoleAdmin, RoleProjectManager, RoleEmployee}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}

	return "", NewErrInvalid("role", fmt.Sprintf("unknown role %q", s))
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

// Rank orders roles by permission: every rule grants a higher-ranked role at
// least what it grants a lower-ranked one. Unknown roles rank 0.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleProjectManager:
		return 2
	case RoleEmployee:
		return 1
	default:
		return 0
	}
}

// InitialRole is the role assigned at registration: the very first account
// becomes Admin, every later account starts as Employee.
func InitialRole(existingUserCount int64) Role {
	if existingUserCount == 0 {
		return RoleAdmin
	}

	return RoleEmployee
}
