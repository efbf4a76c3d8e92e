package schedule

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/course"
)

var ErrNotFound = errors.New("timetable entry not found")

type (
	Repository interface {
		CreateEntry(entry Entry) (Entry, error)
		UpsertEntry(entry Entry) (Entry, error)
		QueryAllEntries() ([]Entry, error)
		GetEntryByID(id int) (Entry, error)
		DeleteEntry(id int) error
		DeleteEntriesByCourseID(courseID int) error
	}

	// CourseDirectory resolves the courses entries are denormalized with.
	CourseDirectory interface {
		QueryAllCourses() ([]course.Course, error)
	}

	Service struct {
		repo    Repository
		courses CourseDirectory
	}
)

func NewService(repo Repository, courses CourseDirectory) *Service {
	return &Service{repo: repo, courses: courses}
}

func (svc *Service) Create(ne NewEntry) (Entry, error) {
	now := time.Now().UTC()
	ent := Entry{
		CourseID:  ne.CourseID,
		DayOfWeek: ne.DayOfWeek,
		StartTime: ne.StartTime,
		EndTime:   ne.EndTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateEntry(ent)
}

// Update upserts the entry under the given id.
func (svc *Service) Update(id int, ue UpdateEntry) (Entry, error) {
	ent, err := svc.repo.GetEntryByID(id)
	if err != nil {
		if err != ErrNotFound {
			return Entry{}, err
		}
		ent = Entry{ID: id, CreatedAt: time.Now().UTC()}
	}
	ent.CourseID = ue.CourseID
	ent.DayOfWeek = ue.DayOfWeek
	ent.StartTime = ue.StartTime
	ent.EndTime = ue.EndTime
	ent.UpdatedAt = time.Now().UTC()
	return svc.repo.UpsertEntry(ent)
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}

func (svc *Service) GetByID(id int) (Entry, error) {
	return svc.repo.GetEntryByID(id)
}

// Delete removes the entry unconditionally.
func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteEntry(id)
}

// Timetable returns the denormalized schedule, filtered by degree
// and grouped by day in canonical week order.
func (svc *Service) Timetable(degree string) ([]DayGroup, error) {
	entries, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, errors.Wrap(err, "querying entries")
	}
	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}

	denormalized := Denormalize(entries, courses)
	return GroupByDay(FilterByDegree(denormalized, degree)), nil
}

// Degrees returns the distinct degree labels present in the course list,
// in first-seen order, for the public filter choices.
func (svc *Service) Degrees() ([]string, error) {
	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}

	seen := make(map[string]bool, len(courses))
	degrees := make([]string, 0, len(courses))
	for _, crs := range courses {
		if !seen[crs.Degree] {
			seen[crs.Degree] = true
			degrees = append(degrees, crs.Degree)
		}
	}
	return degrees, nil
}
