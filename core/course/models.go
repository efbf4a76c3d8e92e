package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

// Degrees is the fixed set of degree programs presented to the admin.
// It is offered as choices only; a submitted degree is checked for
// presence, not membership.
var Degrees = []string{
	"Computer Science",
	"Political Science",
	"MBBS",
	"Civil Engineering",
}

type Course struct {
	ID        int       `json:"id"`
	Name      string    `json:"course_name"`
	Degree    string    `json:"degree"`
	Professor string    `json:"professor"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
// Free-text fields are accepted as-is.
type NewCourse struct {
	Name      string `json:"course_name" validate:"required"`
	Degree    string `json:"degree" validate:"required"`
	Professor string `json:"professor" validate:"required"`
	Location  string `json:"location" validate:"required"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Degree = core.CleanString(nc.Degree)
	nc.Professor = core.CleanString(nc.Professor)
	nc.Location = core.CleanString(nc.Location)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
type UpdateCourse struct {
	Name      string `json:"course_name" validate:"required"`
	Degree    string `json:"degree" validate:"required"`
	Professor string `json:"professor" validate:"required"`
	Location  string `json:"location" validate:"required"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Degree = core.CleanString(uc.Degree)
	uc.Professor = core.CleanString(uc.Professor)
	uc.Location = core.CleanString(uc.Location)
	return validate.Struct(uc)
}
