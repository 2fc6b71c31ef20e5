package session

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariant(t *testing.T, v View) {
	t.Helper()
	if !v.IsAuthenticated && v.User != nil {
		t.Fatalf("not authenticated but user = %+v", *v.User)
	}
}

func TestStore_LoginLogout(t *testing.T) {
	s := NewStore()
	assert.Equal(t, View{}, s.View())

	teacher := Profile{Role: RoleTeacher, Name: "张老师"}
	s.Login(teacher)
	v := s.View()
	assert.True(t, v.IsAuthenticated)
	require.NotNil(t, v.User)
	assert.Equal(t, teacher, *v.User)

	parent := Profile{Role: RoleParent, Name: "王家长"}
	s.Login(parent)
	assert.Equal(t, parent, *s.View().User, "login replaces the profile wholesale")

	s.Logout()
	assert.Equal(t, View{}, s.View())
}

func TestStore_LogoutIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Login(Profile{Role: RoleStudent, Name: "李同学"})

	s.Logout()
	once := s.View()
	s.Logout()
	assert.Equal(t, once, s.View())
}

func TestStore_LoginAcceptsEmptyName(t *testing.T) {
	s := NewStore()
	s.Login(Profile{Role: RoleParent})
	usr, ok := s.Auth().User()
	assert.True(t, ok)
	assert.Equal(t, "", usr.Name)
}

func TestStore_SetAuthenticated(t *testing.T) {
	s := NewStore()

	s.SetAuthenticated(true)
	v := s.View()
	assert.True(t, v.IsAuthenticated)
	assert.Nil(t, v.User)

	s.Login(Profile{Role: RoleTeacher, Name: "张老师"})
	s.SetAuthenticated(false)
	assert.Equal(t, View{}, s.View())
}

func TestStore_ViewIsACopy(t *testing.T) {
	s := NewStore()
	s.Login(Profile{Role: RoleTeacher, Name: "张老师"})

	v := s.View()
	v.User.Name = "changed"
	assert.Equal(t, "张老师", s.View().User.Name)
}

func TestStore_InvariantHoldsForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewStore()
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			s.Login(Profile{Role: AllRoles[rng.Intn(len(AllRoles))], Name: "x"})
		case 1:
			s.Logout()
		case 2:
			s.SetAuthenticated(rng.Intn(2) == 0)
		case 3:
			s.Auth().Logout()
		}
		checkInvariant(t, s.View())
	}
}

func TestStore_UserIffAuthenticated(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStore()
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			s.Auth().Login(Profile{Role: AllRoles[rng.Intn(len(AllRoles))], Name: "x"})
		} else {
			s.Auth().Logout()
		}
		v := s.View()
		if (v.User != nil) != v.IsAuthenticated {
			t.Fatalf("step %d: user = %v, authenticated = %v", i, v.User, v.IsAuthenticated)
		}
	}
}

func TestStore_OnChange(t *testing.T) {
	s := NewStore()
	var seen []View
	s.OnChange(func(v View) { seen = append(seen, v) })

	s.Login(Profile{Role: RoleStudent, Name: "李同学"})
	s.Logout()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsAuthenticated)
	assert.False(t, seen[1].IsAuthenticated)
}

func TestAuth_FacadesShareTheStore(t *testing.T) {
	s := NewStore()
	home, gallery := s.Auth(), s.Auth()

	home.Login(Profile{Role: RoleTeacher, Name: "张老师"})

	assert.True(t, gallery.IsAuthenticated())
	usr, ok := gallery.User()
	assert.True(t, ok)
	assert.Equal(t, RoleTeacher, usr.Role)

	// a facade created after login sees the user too
	late := s.Auth()
	_, ok = late.User()
	assert.True(t, ok)

	gallery.Logout()
	assert.False(t, home.IsAuthenticated())
	_, ok = home.User()
	assert.False(t, ok)
}

func TestRole_JSON(t *testing.T) {
	data, err := json.Marshal(Profile{Role: RoleParent, Name: "王家长"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"parent","name":"王家长"}`, string(data))

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"role":"Teacher","name":"x"}`), &p))
	assert.Equal(t, RoleTeacher, p.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"admin"}`), &p))
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleTeacher, "张老师"},
		{RoleParent, "王家长"},
		{RoleStudent, "李同学"},
		{Role(0), ""},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.DisplayName())
		})
	}
}
