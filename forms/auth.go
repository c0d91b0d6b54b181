package forms

type RegisterForm struct {
	Name     string `json:"name" binding:"required,min=2,max=100" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" validate:"required" minimum:"8" example:"supersecret"`
}

type LoginForm struct {
	Email    string `json:"email" binding:"required,email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" validate:"required" example:"supersecret"`
}
