package forms

type ChapterForm struct {
	Title       string `json:"title" binding:"required,min=1,max=120" validate:"required" example:"Getting started"`
	Description string `json:"description" binding:"max=1000"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateChapterForm struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	IsPublished *bool   `json:"is_published"`
}

type ReorderForm struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,mongoID" validate:"required"`
}
