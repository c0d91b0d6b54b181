package forms

const DEFAULT_LIMIT = 12
const MAX_LIMIT = 50

type PaginationForm struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// Normalize fills page and limit defaults and returns skip and limit
func Normalize(page, limit int) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DEFAULT_LIMIT
	}
	if limit > MAX_LIMIT {
		limit = MAX_LIMIT
	}
	return int64((page - 1) * limit), int64(limit)
}
