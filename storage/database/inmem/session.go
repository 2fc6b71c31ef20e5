package inmemdb

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core/portal"
)

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) portal.Repository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) CreateSession(sess portal.Session) (portal.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[sess.ID]; ok {
		return portal.Session{}, errors.Errorf("session %q already exists", sess.ID)
	}
	repo.db.table[sess.ID] = &sess
	return sess, nil
}

func (repo *sessionRepository) GetSession(id string) (portal.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sess, ok := repo.db.table[id]; ok {
		return *sess, nil
	}
	return portal.Session{}, portal.ErrSessionNotFound
}

func (repo *sessionRepository) TouchSession(id string, at time.Time) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sess, ok := repo.db.table[id]
	if !ok {
		return portal.ErrSessionNotFound
	}
	if at.After(sess.LastSeen) {
		sess.LastSeen = at
	}
	return nil
}

// QueryAllSessions returns the sessions, oldest first.
func (repo *sessionRepository) QueryAllSessions() ([]portal.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sessions := make([]portal.Session, 0, len(repo.db.table))
	for _, sess := range repo.db.table {
		sessions = append(sessions, *sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (repo *sessionRepository) DeleteIdleSessions(t time.Time) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	n := 0
	for id, sess := range repo.db.table {
		if sess.LastSeen.Before(t) {
			delete(repo.db.table, id)
			n++
		}
	}
	return n, nil
}

func (repo *sessionRepository) DeleteSessionsByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
