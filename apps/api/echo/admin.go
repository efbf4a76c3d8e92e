package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
)

type adminApi struct {
	courseSvc   *course.Service
	scheduleSvc *schedule.Service
	sessions    *sessionManager
	validate    *validator.Validate
}

func registerAdminAPI(
	g *echo.Group,
	sessions *sessionManager,
	courseSvc *course.Service,
	scheduleSvc *schedule.Service,
	validate *validator.Validate,
) {
	api := adminApi{
		courseSvc:   courseSvc,
		scheduleSvc: scheduleSvc,
		sessions:    sessions,
		validate:    validate,
	}

	g.GET("/dashboard", api.dashboard)

	cg := g.Group("/courses")
	cg.GET("/degrees", api.degreeOptions)
	cg.POST("/add", api.addCourse)
	cg.GET("/edit/:id", api.getCourse)
	cg.PUT("/edit/:id", api.updateCourse)
	cg.DELETE("/:id", api.deleteCourse)

	eg := g.Group("/timetable")
	eg.POST("/add", api.addEntry)
	eg.GET("/edit/:id", api.getEntry)
	eg.PUT("/edit/:id", api.updateEntry)
	eg.DELETE("/:id", api.deleteEntry)
}

// Handlers

func (api *adminApi) dashboard(ctx echo.Context) error {
	courses, err := api.courseSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	entries, err := api.scheduleSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying timetable entries")
	}
	return ctx.JSON(http.StatusOK, DashboardResponse{Courses: courses, TimetableEntries: entries})
}

// degreeOptions returns the fixed degree set presented in the course form.
func (api *adminApi) degreeOptions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, course.Degrees)
}

func (api *adminApi) addCourse(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.courseSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	api.notify(ctx, "Course added", crs.Name+" has been added")

	return ctx.JSON(http.StatusCreated, crs)
}

func (api *adminApi) getCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	crs, err := api.courseSvc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by ID")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *adminApi) updateCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data course.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.courseSvc.Update(id, data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating course")
	}
	api.notify(ctx, "Course updated", crs.Name+" has been updated")

	return ctx.JSON(http.StatusOK, crs)
}

// deleteCourse removes the course and every timetable entry referencing it.
func (api *adminApi) deleteCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.courseSvc.Delete(id); err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting course")
	}
	api.notify(ctx, "Course deleted", "The course and its timetable entries have been removed")

	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) addEntry(ctx echo.Context) error {
	var data schedule.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.scheduleSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating timetable entry")
	}
	api.notify(ctx, "Timetable entry added", "The entry has been added to "+ent.DayOfWeek)

	return ctx.JSON(http.StatusCreated, ent)
}

func (api *adminApi) getEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	ent, err := api.scheduleSvc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding timetable entry by ID")
	}
	return ctx.JSON(http.StatusOK, ent)
}

func (api *adminApi) updateEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data schedule.UpdateEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.scheduleSvc.Update(id, data)
	if err != nil {
		return errors.Wrap(err, "updating timetable entry")
	}
	api.notify(ctx, "Timetable entry updated", "The entry has been updated")

	return ctx.JSON(http.StatusOK, ent)
}

func (api *adminApi) deleteEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.scheduleSvc.Delete(id); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting timetable entry")
	}
	api.notify(ctx, "Timetable entry deleted", "The timetable entry has been removed")

	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminApi) notify(ctx echo.Context, title, description string) {
	if err := api.sessions.AddFlash(ctx, Notification{Title: title, Description: description}); err != nil {
		ctx.Logger().Errorf("queueing notification: %+v", err)
	}
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

type DashboardResponse struct {
	Courses          []course.Course  `json:"courses"`
	TimetableEntries []schedule.Entry `json:"timetable_entries"`
}
