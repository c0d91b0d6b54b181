package forms

import "github.com/go-playground/validator/v10"

type CourseForm struct {
	Title       string   `json:"title" binding:"required,min=3,max=120" validate:"required" example:"Intro to Go"`
	Description string   `json:"description" binding:"max=5000" example:"Learn Go from scratch"`
	Category    string   `json:"category" binding:"required,min=2,max=60" validate:"required" example:"programming"`
	Level       string   `json:"level" binding:"required,courseLevel" validate:"required" example:"beginner" enums:"beginner,intermediate,advanced"`
	Price       *float64 `json:"price" binding:"required,min=0" validate:"required" example:"0"`
	Tags        []string `json:"tags" binding:"omitempty,max=10,dive,min=1,max=30"`
	Language    string   `json:"language" binding:"omitempty,min=2,max=5" example:"en"`
}

// @Desc All fields are optional
type UpdateCourseForm struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=120" example:"Intro to Go"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Category    *string  `json:"category" binding:"omitempty,min=2,max=60"`
	Level       *string  `json:"level" binding:"omitempty,courseLevel" enums:"beginner,intermediate,advanced"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Tags        []string `json:"tags" binding:"omitempty,max=10,dive,min=1,max=30"`
	Language    *string  `json:"language" binding:"omitempty,min=2,max=5"`
	IsPublished *bool    `json:"is_published" binding:"omitempty"`
}

type CourseQueryForm struct {
	Category   string  `form:"category"`
	Level      string  `form:"level" binding:"omitempty,courseLevel"`
	Instructor string  `form:"instructor" binding:"omitempty,mongoID"`
	Search     string  `form:"search" binding:"omitempty,max=100"`
	MinRating  float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	Sort       string  `form:"sort" binding:"omitempty,courseSort"`
	Page       int     `form:"page" binding:"omitempty,min=1"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=50"`
}

var CourseLevel validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Interface() == "beginner" {
		return true
	}
	if fl.Field().Interface() == "intermediate" {
		return true
	}
	if fl.Field().Interface() == "advanced" {
		return true
	}
	return false
}

var CourseSort validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "newest", "popular", "rating", "price_asc", "price_desc":
		return true
	}
	return false
}
