package inmemdb

import (
	"sync"

	"github.com/trezcool/happyclass/core/portal"
)

type (
	DB struct {
		session *sessionTable
	}

	sessionTable struct {
		mutex sync.RWMutex
		table map[string]*portal.Session
	}
)

func Open() (*DB, error) {
	db := &DB{
		session: &sessionTable{table: make(map[string]*portal.Session)},
	}
	return db, nil
}
