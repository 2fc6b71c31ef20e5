package session

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the kind of user logged in. The set is closed: every switch over
// a Role lists all three values.
type Role int

const (
	RoleTeacher Role = iota + 1
	RoleParent
	RoleStudent
)

// AllRoles in display order.
var AllRoles = []Role{RoleTeacher, RoleParent, RoleStudent}

func (r Role) String() string {
	switch r {
	case RoleTeacher:
		return "teacher"
	case RoleParent:
		return "parent"
	case RoleStudent:
		return "student"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// DisplayName is the name given to a freshly logged in user of this role.
func (r Role) DisplayName() string {
	switch r {
	case RoleTeacher:
		return "张老师"
	case RoleParent:
		return "王家长"
	case RoleStudent:
		return "李同学"
	default:
		return ""
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleParent, RoleStudent:
		return true
	default:
		return false
	}
}

// ParseRole is the inverse of Role.String.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teacher":
		return RoleTeacher, nil
	case "parent":
		return RoleParent, nil
	case "student":
		return RoleStudent, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	role, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
