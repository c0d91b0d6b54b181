package forms

import "github.com/go-playground/validator/v10"

type SettingsForm struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	Language           *string `json:"language" binding:"omitempty,min=2,max=5" example:"en"`
	Theme              *string `json:"theme" binding:"omitempty,theme" example:"dark" enums:"light,dark,system"`
	Timezone           *string `json:"timezone" binding:"omitempty,timezone" example:"America/Santiago"`
	DailyGoalMinutes   *int    `json:"daily_goal_minutes" binding:"omitempty,min=0,max=600" example:"30"`
	ProfilePublic      *bool   `json:"profile_public"`
}

var Theme validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "light", "dark", "system":
		return true
	}
	return false
}
