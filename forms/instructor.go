package forms

type InstructorForm struct {
	Headline  string            `json:"headline" binding:"required,min=3,max=120" validate:"required" example:"Backend engineer"`
	Bio       string            `json:"bio" binding:"max=2000"`
	Expertise []string          `json:"expertise" binding:"omitempty,max=15,dive,min=1,max=40"`
	Website   string            `json:"website" binding:"omitempty,url"`
	Social    map[string]string `json:"social" binding:"omitempty,max=10,dive,keys,min=1,max=20,endkeys,url"`
}

type UpdateInstructorForm struct {
	Headline  *string           `json:"headline" binding:"omitempty,min=3,max=120"`
	Bio       *string           `json:"bio" binding:"omitempty,max=2000"`
	Expertise []string          `json:"expertise" binding:"omitempty,max=15,dive,min=1,max=40"`
	Website   *string           `json:"website" binding:"omitempty,url"`
	Social    map[string]string `json:"social" binding:"omitempty,max=10,dive,keys,min=1,max=20,endkeys,url"`
}
