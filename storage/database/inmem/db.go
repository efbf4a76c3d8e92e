// Package inmemdb is the process-wide record store. There is no persistence
// layer; all state lives here for the lifetime of the process.
package inmemdb

import (
	"sync"

	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/core/user"
)

type (
	DB struct {
		user   *userTable
		course *courseTable
		entry  *entryTable
	}

	userTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*user.User
	}

	courseTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*course.Course
	}

	entryTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*schedule.Entry
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:   &userTable{table: make(map[int]*user.User)},
		course: &courseTable{table: make(map[int]*course.Course)},
		entry:  &entryTable{table: make(map[int]*schedule.Entry)},
	}
	return db, nil
}
