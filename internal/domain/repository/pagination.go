package repository

// Pagination carries the page window for list queries.
// Page numbers start at 1; the offset follows limit * (page - 1).
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the requested page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return p.Limit * (p.Page - 1)
}
