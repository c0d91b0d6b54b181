package forms

import "github.com/go-playground/validator/v10"

type EnrollmentForm struct {
	Course string `json:"course" binding:"required,mongoID" validate:"required" example:"637d5de216f58bc8ec7f7f51"`
}

type UpdateEnrollmentForm struct {
	Status string `json:"status" binding:"required,enrollmentStatus" validate:"required" example:"paused" enums:"active,paused,dropped"`
}

// EnrollmentStatus accepts the statuses an user can set by hand
var EnrollmentStatus validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "paused", "dropped":
		return true
	}
	return false
}
