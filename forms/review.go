package forms

type ReviewForm struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" validate:"required" minimum:"1" maximum:"5" example:"5"`
	Comment string `json:"comment" binding:"max=1000" example:"Great course"`
}
