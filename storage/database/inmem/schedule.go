package inmemdb

import (
	"sort"

	"github.com/trezcool/ratiba/core/schedule"
)

type entryRepository struct {
	db *entryTable
}

var _ schedule.Repository = (*entryRepository)(nil) // interface compliance check

func NewEntryRepository(db *DB) schedule.Repository {
	return &entryRepository{db: db.entry}
}

func (repo *entryRepository) query() []schedule.Entry {
	entries := make([]schedule.Entry, 0, len(repo.db.table))
	for _, ent := range repo.db.table {
		entries = append(entries, *ent)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

func (repo *entryRepository) CreateEntry(ent schedule.Entry) (schedule.Entry, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	ent.ID = repo.db.pkCount
	repo.db.table[ent.ID] = &ent
	return ent, nil
}

func (repo *entryRepository) UpsertEntry(ent schedule.Entry) (schedule.Entry, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if ent.ID > repo.db.pkCount {
		repo.db.pkCount = ent.ID
	}
	repo.db.table[ent.ID] = &ent
	return ent, nil
}

func (repo *entryRepository) QueryAllEntries() ([]schedule.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *entryRepository) GetEntryByID(id int) (schedule.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if ent, ok := repo.db.table[id]; ok {
		return *ent, nil
	}
	return schedule.Entry{}, schedule.ErrNotFound
}

func (repo *entryRepository) DeleteEntry(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

// DeleteEntriesByCourseID removes every entry referencing courseID, and no others.
func (repo *entryRepository) DeleteEntriesByCourseID(courseID int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for id, ent := range repo.db.table {
		if ent.CourseID == courseID {
			delete(repo.db.table, id)
		}
	}
	return nil
}
