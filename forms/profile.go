package forms

type ProfileForm struct {
	DisplayName *string  `json:"display_name" binding:"omitempty,min=1,max=60" example:"Jane"`
	Bio         *string  `json:"bio" binding:"omitempty,max=500"`
	Location    *string  `json:"location" binding:"omitempty,max=100"`
	Website     *string  `json:"website" binding:"omitempty,url"`
	Interests   []string `json:"interests" binding:"omitempty,max=20,dive,min=1,max=40"`
}
