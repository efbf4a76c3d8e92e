package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

type timetableApi struct {
	svc *schedule.Service
}

func registerTimetableAPI(g *echo.Group, svc *schedule.Service) {
	api := timetableApi{svc: svc}

	g.GET("", api.timetable)
	g.GET("/degrees", api.degrees)
}

// Handlers

// timetable returns the denormalized schedule grouped by day;
// `?degree=` narrows it to a single degree program.
func (api *timetableApi) timetable(ctx echo.Context) error {
	degree := core.CleanString(ctx.QueryParam("degree"))

	groups, err := api.svc.Timetable(degree)
	if err != nil {
		return errors.Wrap(err, "resolving timetable")
	}
	if groups == nil {
		groups = []schedule.DayGroup{}
	}
	return ctx.JSON(http.StatusOK, groups)
}

// degrees returns the distinct degree labels available for filtering.
func (api *timetableApi) degrees(ctx echo.Context) error {
	degrees, err := api.svc.Degrees()
	if err != nil {
		return errors.Wrap(err, "listing degrees")
	}
	if degrees == nil {
		degrees = []string{}
	}
	return ctx.JSON(http.StatusOK, degrees)
}
