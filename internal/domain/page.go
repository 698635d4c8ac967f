package domain

type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

// NewPageMeta derives page metadata; limit must be at least 1.
func NewPageMeta(page, limit int, total int64) PageMeta {
	pages := 0
	if limit > 0 && total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PageMeta{
		CurrentPage: page,
		TotalPages:  pages,
		TotalCount:  total,
		HasNextPage: page < pages,
		HasPrevPage: page > 1,
		Limit:       limit,
	}
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks []TaskWithUser
	Meta  PageMeta
}
