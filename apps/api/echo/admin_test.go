package echoapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
)

func Test_adminApi_guard(t *testing.T) {
	srv := newTestServer(t)

	t.Run("unauthenticated is sent to login", func(t *testing.T) {
		rec := do(srv, http.MethodGet, "/admin/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, loginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("student is sent home", func(t *testing.T) {
		cookies := login(t, srv, "student", "password")
		rec := do(srv, http.MethodGet, "/admin/dashboard", cookies)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, homePath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("admin is shown the dashboard", func(t *testing.T) {
		cookies := login(t, srv, "admin", "password")
		rec := do(srv, http.MethodGet, "/admin/dashboard", cookies)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable session gets a neutral answer, no redirect", func(t *testing.T) {
		garbage := &http.Cookie{Name: testConfig().SessionName, Value: "not-a-session"}
		rec := do(srv, http.MethodGet, "/admin/dashboard", []*http.Cookie{garbage})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	})
}

func Test_adminApi_dashboard(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "admin", "password")

	rec := do(srv, http.MethodGet, "/admin/dashboard", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard() code = %v; body = %v", rec.Code, rec.Body.String())
	}
	var data DashboardResponse
	unmarchallObj(t, rec, &data)
	assert.Len(t, data.Courses, 9)
	assert.Len(t, data.TimetableEntries, 9)
}

func Test_adminApi_courses(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "admin", "password")

	t.Run("add", func(t *testing.T) {
		body := marchallObj(t, course.NewCourse{
			Name:      "Thermodynamics",
			Degree:    "Civil Engineering",
			Professor: "Dr. Moore",
			Location:  "Engineering Block 103",
		})
		rec := do(srv, http.MethodPost, "/admin/courses/add", cookies, body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("addCourse() code = %v; body = %v", rec.Code, rec.Body.String())
		}
		var crs course.Course
		unmarchallObj(t, rec, &crs)
		assert.Equal(t, 10, crs.ID)
		assert.Equal(t, "Thermodynamics", crs.Name)
	})

	t.Run("add rejects missing degree", func(t *testing.T) {
		body := marchallObj(t, course.NewCourse{Name: "Untitled", Professor: "Dr. Who", Location: "TBD"})
		rec := do(srv, http.MethodPost, "/admin/courses/add", cookies, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "degree")
	})

	t.Run("edit", func(t *testing.T) {
		rec := do(srv, http.MethodGet, "/admin/courses/edit/1", cookies)
		if rec.Code != http.StatusOK {
			t.Fatalf("getCourse() code = %v; body = %v", rec.Code, rec.Body.String())
		}
		var crs course.Course
		unmarchallObj(t, rec, &crs)
		assert.Equal(t, "Database Systems", crs.Name)

		body := marchallObj(t, course.UpdateCourse{
			Name:      "Advanced Database Systems",
			Degree:    crs.Degree,
			Professor: crs.Professor,
			Location:  "Room 110",
		})
		rec = do(srv, http.MethodPut, "/admin/courses/edit/1", cookies, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("updateCourse() code = %v; body = %v", rec.Code, rec.Body.String())
		}
		unmarchallObj(t, rec, &crs)
		assert.Equal(t, "Advanced Database Systems", crs.Name)
		assert.Equal(t, "Room 110", crs.Location)
	})

	t.Run("edit unknown id", func(t *testing.T) {
		rec := do(srv, http.MethodGet, "/admin/courses/edit/999", cookies)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete cascades to timetable entries", func(t *testing.T) {
		rec := do(srv, http.MethodDelete, "/admin/courses/1", cookies)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(srv, http.MethodGet, "/admin/dashboard", cookies)
		var data DashboardResponse
		unmarchallObj(t, rec, &data)

		for _, crs := range data.Courses {
			assert.NotEqual(t, 1, crs.ID)
		}
		// only the entries referencing the deleted course are gone
		assert.Len(t, data.TimetableEntries, 8)
		for _, ent := range data.TimetableEntries {
			assert.NotEqual(t, 1, ent.CourseID)
		}
	})
}

func Test_adminApi_entries(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "admin", "password")

	entryBody := func(courseID int, day, start, end string) []byte {
		return []byte(fmt.Sprintf(
			`{"course_id": %d, "day_of_week": %q, "start_time": %q, "end_time": %q}`,
			courseID, day, start, end,
		))
	}

	t.Run("add validates format before range", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end string
			wantCode   int
			wantErr    string
		}{
			{name: "hour out of range", start: "25:00", end: "26:00", wantCode: http.StatusBadRequest, wantErr: "invalid time format"},
			{name: "minute out of range", start: "09:60", end: "10:00", wantCode: http.StatusBadRequest, wantErr: "invalid time format"},
			{name: "non-zero-padded hour is accepted", start: "9:00", end: "10:30", wantCode: http.StatusCreated},
			{name: "zero-padded pair is accepted", start: "09:00", end: "10:30", wantCode: http.StatusCreated},
			{name: "inverted range gets the range error", start: "10:30", end: "09:00", wantCode: http.StatusBadRequest, wantErr: "invalid time range"},
			{name: "zero-length range is rejected", start: "10:30", end: "10:30", wantCode: http.StatusBadRequest, wantErr: "invalid time range"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := do(srv, http.MethodPost, "/admin/timetable/add", cookies, entryBody(2, "Friday", tt.start, tt.end))
				assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				if tt.wantErr != "" {
					assert.Contains(t, rec.Body.String(), tt.wantErr)
				}
			})
		}
	})

	t.Run("add rejects an unknown day", func(t *testing.T) {
		rec := do(srv, http.MethodPost, "/admin/timetable/add", cookies, entryBody(2, "Funday", "09:00", "10:00"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid day of week")
	})

	t.Run("update upserts", func(t *testing.T) {
		body := entryBody(3, "Saturday", "08:00", "09:30")
		rec := do(srv, http.MethodPut, "/admin/timetable/edit/5", cookies, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("updateEntry() code = %v; body = %v", rec.Code, rec.Body.String())
		}
		var ent schedule.Entry
		unmarchallObj(t, rec, &ent)
		assert.Equal(t, 5, ent.ID)
		assert.Equal(t, "Saturday", ent.DayOfWeek)
		assert.Equal(t, 3, ent.CourseID)
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(srv, http.MethodDelete, "/admin/timetable/9", cookies)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(srv, http.MethodGet, "/admin/timetable/edit/9", cookies)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
