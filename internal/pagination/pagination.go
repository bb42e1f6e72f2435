// Package pagination implements the page/limit/total arithmetic shared by every paged view.
package pagination

// Pagination describes where a page sits within a result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// Page is one slice of a result set together with its pagination metadata.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Calculate derives pagination metadata. page is 1-based and is not clamped here;
// callers normalise it before calling. A non-positive limit yields zero pages.
func Calculate(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Apply slices data to the requested page. Pages outside the data yield an empty slice.
func Apply[T any](data []T, page, limit int) Page[T] {
	result := Page[T]{
		Data:       []T{},
		Pagination: Calculate(page, limit, len(data)),
	}
	if page < 1 || limit <= 0 || len(data) == 0 {
		return result
	}
	// compare before multiplying so a huge page cannot overflow start
	if page-1 > (len(data)-1)/limit {
		return result
	}

	start := (page - 1) * limit
	end := start + limit
	if end > len(data) {
		end = len(data)
	}
	result.Data = append(result.Data, data[start:end]...)
	return result
}

// Normalize applies the defaults used by HTTP handlers: page >= 1 and 1 <= limit <= maxLimit.
func Normalize(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
