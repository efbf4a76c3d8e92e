package course

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(course Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		UpdateCourse(course Course) (Course, error)
		DeleteCourse(id int) error
	}

	// EntryCascader removes the schedule entries referencing a course.
	// Cascade deletion is enforced here, not by the storage layer.
	EntryCascader interface {
		DeleteEntriesByCourseID(courseID int) error
	}

	Service struct {
		repo    Repository
		entries EntryCascader
	}
)

func NewService(repo Repository, entries EntryCascader) *Service {
	return &Service{repo: repo, entries: entries}
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	crs := Course{
		Name:      nc.Name,
		Degree:    nc.Degree,
		Professor: nc.Professor,
		Location:  nc.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Update(id int, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}
	crs.Name = uc.Name
	crs.Degree = uc.Degree
	crs.Professor = uc.Professor
	crs.Location = uc.Location
	crs.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCourse(crs)
}

// Delete removes the course and cascades to every schedule entry referencing it.
func (svc *Service) Delete(id int) error {
	if err := svc.repo.DeleteCourse(id); err != nil {
		return err
	}
	return errors.Wrap(svc.entries.DeleteEntriesByCourseID(id), "cascading to schedule entries")
}
