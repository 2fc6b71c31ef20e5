package portal

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
)

var ErrSessionNotFound = errors.Wrap(core.ErrNotFound, "session")

type (
	// Session is a portal registered under a browser session ID.
	Session struct {
		ID        string
		Portal    *Portal
		CreatedAt time.Time
		LastSeen  time.Time
	}

	Repository interface {
		CreateSession(sess Session) (Session, error)
		// GetSession returns ErrSessionNotFound when id is unknown.
		GetSession(id string) (Session, error)
		TouchSession(id string, at time.Time) error
		QueryAllSessions() ([]Session, error)
		// DeleteIdleSessions removes the sessions last seen before t and returns how many were removed.
		DeleteIdleSessions(t time.Time) (int, error)
		DeleteSessionsByID(ids ...string) error
	}

	Service struct {
		repo Repository
		seed Seed
		opts Options
		clk  clock.Clock
	}
)

// NewService returns a Service that builds every new portal from seed and opts.
func NewService(repo Repository, seed Seed, opts Options) *Service {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
		opts.Clock = clk
	}
	return &Service{repo: repo, seed: seed, opts: opts, clk: clk}
}

// Open starts a new logged-out portal.
func (svc *Service) Open() (Session, error) {
	now := svc.clk.Now().UTC()
	sess := Session{
		ID:        uuid.NewString(),
		Portal:    New(svc.seed, svc.opts),
		CreatedAt: now,
		LastSeen:  now,
	}
	return svc.repo.CreateSession(sess)
}

// Get returns the session id and marks it as seen.
func (svc *Service) Get(id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Session{}, ErrSessionNotFound
	}
	sess, err := svc.repo.GetSession(id)
	if err != nil {
		return Session{}, err
	}
	now := svc.clk.Now().UTC()
	if err = svc.repo.TouchSession(id, now); err != nil {
		return Session{}, err
	}
	sess.LastSeen = now
	return sess, nil
}

func (svc *Service) QueryAll() ([]Session, error) {
	return svc.repo.QueryAllSessions()
}

// Count returns the number of open sessions.
func (svc *Service) Count() (int, error) {
	all, err := svc.QueryAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// Clock is the clock session timestamps are taken from.
func (svc *Service) Clock() clock.Clock {
	return svc.clk
}

// SweepIdle closes the sessions not seen for idle.
func (svc *Service) SweepIdle(idle time.Duration) (int, error) {
	return svc.repo.DeleteIdleSessions(svc.clk.Now().UTC().Add(-idle))
}

// Close ends the sessions ids. Unknown ids are ignored.
func (svc *Service) Close(ids ...string) error {
	return svc.repo.DeleteSessionsByID(ids...)
}
