package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/core/user"
)

var (
	seedUsers = []struct {
		username string
		password string
		role     string
	}{
		{"admin", "password", user.RoleAdmin},
		{"student", "password", user.RoleStudent},
	}

	seedCourses = []course.Course{
		{Name: "Database Systems", Degree: "Computer Science", Professor: "Dr. Smith", Location: "Room 101"},
		{Name: "Web Programming", Degree: "Computer Science", Professor: "Prof. Johnson", Location: "Lab 203"},
		{Name: "Data Structures and Algorithms", Degree: "Computer Science", Professor: "Dr. Williams", Location: "Room 105"},
		{Name: "International Relations", Degree: "Political Science", Professor: "Prof. Davis", Location: "Hall 301"},
		{Name: "Political Theory", Degree: "Political Science", Professor: "Dr. Miller", Location: "Room 202"},
		{Name: "Anatomy", Degree: "MBBS", Professor: "Dr. Anderson", Location: "Medical Lab 1"},
		{Name: "Physiology", Degree: "MBBS", Professor: "Prof. Wilson", Location: "Medical Lab 2"},
		{Name: "Structural Analysis", Degree: "Civil Engineering", Professor: "Dr. Taylor", Location: "Engineering Block 101"},
		{Name: "Fluid Mechanics", Degree: "Civil Engineering", Professor: "Prof. Thomas", Location: "Engineering Block 102"},
	}

	seedEntries = []schedule.Entry{
		{CourseID: 1, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:30"},
		{CourseID: 2, DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:30"},
		{CourseID: 3, DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "11:00"},
		{CourseID: 4, DayOfWeek: "Tuesday", StartTime: "13:00", EndTime: "14:30"},
		{CourseID: 5, DayOfWeek: "Wednesday", StartTime: "09:00", EndTime: "10:30"},
		{CourseID: 6, DayOfWeek: "Wednesday", StartTime: "11:00", EndTime: "13:00"},
		{CourseID: 7, DayOfWeek: "Thursday", StartTime: "09:00", EndTime: "11:00"},
		{CourseID: 8, DayOfWeek: "Thursday", StartTime: "13:00", EndTime: "15:00"},
		{CourseID: 9, DayOfWeek: "Friday", StartTime: "10:00", EndTime: "12:00"},
	}
)

// Seed loads the demo fixture data: two users (admin, student; both with
// password "password"), nine courses and their nine timetable entries.
func Seed(db *DB) error {
	userRepo := NewUserRepository(db)
	for _, su := range seedUsers {
		usr := user.User{Username: su.username, Role: su.role}
		if err := usr.SetPassword(su.password); err != nil {
			return errors.Wrap(err, "hashing seed password")
		}
		if _, err := userRepo.CreateUser(usr); err != nil {
			return errors.Wrap(err, "seeding users")
		}
	}

	courseRepo := NewCourseRepository(db)
	for _, crs := range seedCourses {
		if _, err := courseRepo.CreateCourse(crs); err != nil {
			return errors.Wrap(err, "seeding courses")
		}
	}

	entryRepo := NewEntryRepository(db)
	for _, ent := range seedEntries {
		if _, err := entryRepo.CreateEntry(ent); err != nil {
			return errors.Wrap(err, "seeding timetable entries")
		}
	}
	return nil
}
