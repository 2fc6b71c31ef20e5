package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/happyclass/core/session"
)

func TestController_View(t *testing.T) {
	seed := Seed{
		Notices: []Notice{
			{ID: "3", Title: "校园开放日", Date: "2025-06-01"},
			{ID: "1", Title: "家长会通知", Date: "2025-06-09"},
			{ID: "4", Title: "春游", Date: "2025-06-01"},
			{ID: "2", Title: "期末考试安排", Date: "2025-06-05"},
		},
		Schedule: Schedule{Week: 15, Days: []Day{{Day: "周一", Lessons: []string{"语文", "数学"}}}},
	}
	store := session.NewStore()
	ctrl := NewController(store.Auth(), seed)

	v := ctrl.View()
	ids := make([]string, 0, len(v.Notices))
	for _, n := range v.Notices {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	assert.Equal(t, 15, v.Schedule.Week)
	assert.Equal(t, "3", seed.Notices[0].ID, "seed is left untouched")

	v.Notices[0].Title = "changed"
	assert.Equal(t, "家长会通知", ctrl.View().Notices[0].Title)
}

func TestController_Logout(t *testing.T) {
	store := session.NewStore()
	ctrl := NewController(store.Auth(), Seed{})
	store.Login(session.Profile{Role: session.RoleParent, Name: "王家长"})
	require.True(t, ctrl.View().Session.IsAuthenticated)

	ctrl.Logout()
	v := ctrl.View()
	assert.False(t, v.Session.IsAuthenticated)
	assert.Nil(t, v.Session.User)
	assert.NotNil(t, v.Notices)
}
