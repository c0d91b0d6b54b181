package forms

type LessonForm struct {
	Title         string `json:"title" binding:"required,min=1,max=120" validate:"required" example:"Variables"`
	Content       string `json:"content" binding:"max=50000"`
	VideoURL      string `json:"video_url" binding:"omitempty,url" example:"https://example.com/video.mp4"`
	Duration      int    `json:"duration" binding:"min=0,max=1440" example:"12"`
	IsPublished   *bool  `json:"is_published"`
	IsFreePreview *bool  `json:"is_free_preview"`
}

type UpdateLessonForm struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=120"`
	Content       *string `json:"content" binding:"omitempty,max=50000"`
	VideoURL      *string `json:"video_url" binding:"omitempty,url"`
	Duration      *int    `json:"duration" binding:"omitempty,min=0,max=1440"`
	Position      *int    `json:"position" binding:"omitempty,min=0"`
	IsPublished   *bool   `json:"is_published"`
	IsFreePreview *bool   `json:"is_free_preview"`
}
