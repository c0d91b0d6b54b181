package forms

type ProgressForm struct {
	Lesson    string `json:"lesson" binding:"required,mongoID" validate:"required" example:"637d5de216f58bc8ec7f7f51"`
	Completed *bool  `json:"completed" binding:"required" validate:"required"`
	Score     *int   `json:"score" binding:"omitempty,min=0,max=100" example:"90"`
	TimeSpent int    `json:"time_spent" binding:"min=0,max=86400" example:"300"` // Seconds
}
