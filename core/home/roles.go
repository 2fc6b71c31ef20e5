package home

import (
	"math/rand"
	"sync"

	"github.com/trezcool/happyclass/core/session"
)

// RolePicker chooses the role of a new login.
type RolePicker interface {
	PickRole() session.Role
}

// RolePickerFunc adapts a function to the RolePicker interface.
type RolePickerFunc func() session.Role

func (f RolePickerFunc) PickRole() session.Role { return f() }

// FixedRole always picks role.
func FixedRole(role session.Role) RolePicker {
	return RolePickerFunc(func() session.Role { return role })
}

type randomRolePicker struct {
	mu            sync.Mutex
	rnd           *rand.Rand
	teacherChance float64
	parentChance  float64
}

// NewRandomRolePicker picks a teacher with probability teacherChance; otherwise
// a parent with probability parentChance, and a student for the rest.
func NewRandomRolePicker(rnd *rand.Rand, teacherChance, parentChance float64) RolePicker {
	return &randomRolePicker{rnd: rnd, teacherChance: teacherChance, parentChance: parentChance}
}

func (p *randomRolePicker) PickRole() session.Role {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rnd.Float64() > 1-p.teacherChance {
		return session.RoleTeacher
	}
	if p.rnd.Float64() > 1-p.parentChance {
		return session.RoleParent
	}
	return session.RoleStudent
}
