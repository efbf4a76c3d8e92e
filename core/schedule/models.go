package schedule

import (
	"strconv"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

// WeekDays is the canonical week ordering used to sort grouped entries.
var WeekDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

type Entry struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"course_id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"` // 24-hour "HH:MM"
	EndTime   string    `json:"end_time"`   // 24-hour "HH:MM"
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewEntry contains information needed to create a new timetable Entry.
type NewEntry struct {
	CourseID  int    `json:"course_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// Validate checks the time format first, then that the end time is strictly
// later than the start time. A format failure short-circuits the range check.
func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.DayOfWeek = core.CleanString(ne.DayOfWeek)
	ne.StartTime = core.CleanString(ne.StartTime)
	ne.EndTime = core.CleanString(ne.EndTime)

	if err := validate.Struct(ne); err != nil {
		return err
	}
	return validateTimeRange(ne.StartTime, ne.EndTime)
}

// UpdateEntry defines what information may be provided to modify an existing Entry.
type UpdateEntry struct {
	CourseID  int    `json:"course_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

func (ue *UpdateEntry) Validate(validate *validator.Validate) error {
	ue.DayOfWeek = core.CleanString(ue.DayOfWeek)
	ue.StartTime = core.CleanString(ue.StartTime)
	ue.EndTime = core.CleanString(ue.EndTime)

	if err := validate.Struct(ue); err != nil {
		return err
	}
	return validateTimeRange(ue.StartTime, ue.EndTime)
}

var timeRangeText = "invalid time range"

func validateTimeRange(start, end string) error {
	if timeToMinutes(end) <= timeToMinutes(start) {
		return core.NewValidationError(nil, core.FieldError{Field: "end_time", Error: timeRangeText})
	}
	return nil
}

// timeToMinutes converts a validated "HH:MM" value to minutes since midnight.
func timeToMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

var (
	dayOfWeekTag  = "dayofweek"
	dayOfWeekText = "invalid day of week"
)

// InitValidators registers the schedule domain validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(dayOfWeekTag, dayOfWeekValidation)
	core.RegisterCustomTranslation(validate, translator, dayOfWeekTag, dayOfWeekText)
}

// dayOfWeekValidation only allows one of the seven fixed day labels.
func dayOfWeekValidation(fl validator.FieldLevel) bool {
	day := fl.Field().String()
	for _, d := range WeekDays {
		if day == d {
			return true
		}
	}
	return false
}
