package forms

import "github.com/go-playground/validator/v10"

type FeedbackForm struct {
	Type    string `json:"type" binding:"required,feedbackType" validate:"required" example:"bug" enums:"bug,feature,content,other"`
	Message string `json:"message" binding:"required,min=5,max=2000" validate:"required" example:"The video does not load"`
	Rating  int    `json:"rating" binding:"min=0,max=5" example:"4"`
	Course  string `json:"course" binding:"omitempty,mongoID" example:"637d5de216f58bc8ec7f7f51"`
}

type UpdateFeedbackForm struct {
	Status string `json:"status" binding:"required,feedbackStatus" validate:"required" example:"resolved" enums:"open,reviewed,resolved"`
}

type FeedbackQueryForm struct {
	Status string `form:"status" binding:"omitempty,feedbackStatus"`
	Type   string `form:"type" binding:"omitempty,feedbackType"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

var FeedbackType validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "bug", "feature", "content", "other":
		return true
	}
	return false
}

var FeedbackStatus validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "open", "reviewed", "resolved":
		return true
	}
	return false
}
