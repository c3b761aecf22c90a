package domain

// PaginationParams selects one page of a list query. Page numbering is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Clamp brings out-of-range values back into bounds: pages below 1 become 1,
// sizes below 1 take defaultSize, sizes above maxSize are capped.
func (p PaginationParams) Clamp(defaultSize, maxSize int) PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset is the number of rows to skip to reach the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
