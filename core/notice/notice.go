// Package notice is the notice board: class announcements and the weekly schedule.
package notice

import (
	"sort"

	"github.com/trezcool/happyclass/core/session"
)

type Notice struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Date    string `json:"date" yaml:"date"` // YYYY-MM-DD
}

type Day struct {
	Day     string   `json:"day" yaml:"day"`
	Lessons []string `json:"lessons" yaml:"lessons"`
}

type Schedule struct {
	Week int   `json:"week" yaml:"week"`
	Days []Day `json:"days" yaml:"days"`
}

type Seed struct {
	Notices  []Notice `json:"notices" yaml:"notices"`
	Schedule Schedule `json:"schedule" yaml:"schedule"`
}

type View struct {
	Session  session.View `json:"session"`
	Notices  []Notice     `json:"notices"`
	Schedule Schedule     `json:"schedule"`
}

type Controller struct {
	auth     *session.Auth
	notices  []Notice
	schedule Schedule
}

// NewController sorts the notices once, newest first. Notices of the same day keep their seed order.
func NewController(auth *session.Auth, seed Seed) *Controller {
	notices := append([]Notice(nil), seed.Notices...)
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].Date > notices[j].Date
	})
	return &Controller{auth: auth, notices: notices, schedule: seed.Schedule}
}

func (c *Controller) View() View {
	return View{
		Session:  c.auth.View(),
		Notices:  append([]Notice{}, c.notices...),
		Schedule: c.schedule,
	}
}

func (c *Controller) Logout() {
	c.auth.Logout()
}
