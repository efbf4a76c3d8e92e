package course_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
	inmemdb "github.com/trezcool/ratiba/storage/database/inmem"
)

func newTestServices(t *testing.T) (*course.Service, schedule.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("newTestServices() failed: %v", err)
	}
	if err = inmemdb.Seed(db); err != nil {
		t.Fatalf("newTestServices() failed: %v", err)
	}
	entryRepo := inmemdb.NewEntryRepository(db)
	return course.NewService(inmemdb.NewCourseRepository(db), entryRepo), entryRepo
}

func TestService_CRUD(t *testing.T) {
	svc, _ := newTestServices(t)

	crs, err := svc.Create(course.NewCourse{
		Name:      "Thermodynamics",
		Degree:    "Civil Engineering",
		Professor: "Dr. Moore",
		Location:  "Engineering Block 103",
	})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 10, crs.ID)
	assert.False(t, crs.CreatedAt.IsZero())

	crs, err = svc.Update(crs.ID, course.UpdateCourse{
		Name:      crs.Name,
		Degree:    crs.Degree,
		Professor: "Prof. Moore",
		Location:  crs.Location,
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Prof. Moore", crs.Professor)
	}

	got, err := svc.GetByID(crs.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, crs, got)
	}

	_, err = svc.GetByID(999)
	assert.Equal(t, course.ErrNotFound, errors.Cause(err))
	_, err = svc.Update(999, course.UpdateCourse{Name: "x", Degree: "y", Professor: "z", Location: "w"})
	assert.Equal(t, course.ErrNotFound, errors.Cause(err))
	assert.Equal(t, course.ErrNotFound, errors.Cause(svc.Delete(999)))
}

func TestService_Delete_cascades(t *testing.T) {
	svc, entryRepo := newTestServices(t)

	// course 3 has exactly one timetable entry
	if err := svc.Delete(3); !assert.NoError(t, err) {
		return
	}

	_, err := svc.GetByID(3)
	assert.Equal(t, course.ErrNotFound, errors.Cause(err))

	entries, err := entryRepo.QueryAllEntries()
	if !assert.NoError(t, err) {
		return
	}
	// only the referencing entry is dropped
	assert.Len(t, entries, 8)
	for _, ent := range entries {
		assert.NotEqual(t, 3, ent.CourseID)
	}
}
