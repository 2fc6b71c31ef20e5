package session

// Auth is the view of a Store handed to a page.
type Auth struct {
	store *Store
}

// Auth returns a facade over s. Facades hold no state of their own.
func (s *Store) Auth() *Auth {
	return &Auth{store: s}
}

func (a *Auth) IsAuthenticated() bool {
	return a.store.View().IsAuthenticated
}

// User returns the logged in profile, if any.
func (a *Auth) User() (Profile, bool) {
	v := a.store.View()
	if v.User == nil {
		return Profile{}, false
	}
	return *v.User, true
}

func (a *Auth) View() View {
	return a.store.View()
}

// Login stores profile in the shared Store. No precondition is enforced on profile.
func (a *Auth) Login(profile Profile) {
	a.store.Login(profile)
}

func (a *Auth) Logout() {
	a.store.Logout()
}
