package utils

// PaginationParams holds skip/limit request parameters
type PaginationParams struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

const (
	// DefaultLimit is applied when no limit is supplied
	DefaultLimit = 100
	// MaxLimit caps the page size
	MaxLimit = 100
)

// GetPaginationParams normalizes skip and limit values
func GetPaginationParams(skip, limit int) PaginationParams {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PaginationParams{
		Skip:  skip,
		Limit: limit,
	}
}
