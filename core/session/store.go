// Package session holds who is logged in to a portal.
//
// A Store is the single writable copy of the session. Pages never keep their
// own copy of the profile: they read it through an Auth facade, so every
// page of one portal always agrees on who is logged in.
package session

import "sync"

// Profile is the logged in user. It is immutable once created.
type Profile struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// View is a read-only snapshot of a Store.
// User is non-nil only when IsAuthenticated is true.
type View struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	User            *Profile `json:"user"`
}

// Role returns the logged in role and whether a user is present.
func (v View) Role() (Role, bool) {
	if v.User == nil {
		return 0, false
	}
	return v.User.Role, true
}

// Listener is called after every state transition with the new state.
type Listener func(View)

type Store struct {
	mu              sync.RWMutex
	isAuthenticated bool
	user            *Profile
	listeners       []Listener
}

// NewStore returns a logged-out Store.
func NewStore() *Store {
	return &Store{}
}

// View returns a snapshot of the current state.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view()
}

func (s *Store) view() View {
	v := View{IsAuthenticated: s.isAuthenticated}
	if s.user != nil {
		usr := *s.user
		v.User = &usr
	}
	return v
}

// SetAuthenticated sets the authentication flag. Clearing it also clears the user.
func (s *Store) SetAuthenticated(flag bool) {
	s.update(func() {
		s.isAuthenticated = flag
		if !flag {
			s.user = nil
		}
	})
}

// Login replaces the current user with profile and marks the session authenticated.
func (s *Store) Login(profile Profile) {
	s.update(func() {
		s.user = &profile
		s.isAuthenticated = true
	})
}

// Logout clears the session. It is idempotent.
func (s *Store) Logout() {
	s.update(func() {
		s.isAuthenticated = false
		s.user = nil
	})
}

// OnChange registers l to be called after every transition.
func (s *Store) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	v := s.view()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(v)
	}
}
