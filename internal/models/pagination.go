// internal/models/pagination.go
package models

// Query values are clamped to these bounds so GetOffset and TotalPages stay
// inside int.
const (
	DefaultPageSize = 9
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

func NewPagination(page, pageSize int) *Pagination {
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func (p *Pagination) GetOffset() int {
	return (p.Page - 1) * p.PageSize
}

func (p *Pagination) GetLimit() int {
	return p.PageSize
}

// TotalPages returns how many pages total items fill. An empty result still
// has one (empty) page.
func (p *Pagination) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	pages := total / p.PageSize
	if total%p.PageSize != 0 {
		pages++
	}
	return pages
}
