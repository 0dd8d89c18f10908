package models

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilter is the common query shape for paged entity listings.
type ListFilter struct {
	Search         string
	Active         *bool
	Published      *bool
	OrderBy        string
	OrderDirection string
	Page           int
	PageSize       int
}

// Normalize fills zero or negative paging values with the given defaults and
// lower-cases the direction.
func (f ListFilter) Normalize(defaultPageSize int) ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.OrderBy == "" {
		f.OrderBy = "order"
	}
	f.OrderDirection = strings.ToLower(strings.TrimSpace(f.OrderDirection))
	if f.OrderDirection != SortDesc {
		f.OrderDirection = SortAsc
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Offset is the row skip for the page. It saturates at math.MaxInt64, the
// largest OFFSET postgres accepts, so absurd pages read as empty.
func (f ListFilter) Offset() uint64 {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	pages, size := uint64(f.Page-1), uint64(f.PageSize)
	if pages > math.MaxInt64/size {
		return math.MaxInt64
	}
	return pages * size
}

// OrderItem is one entry of a reorder batch.
type OrderItem struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order int       `json:"order" validate:"min=0"`
}

type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func NewPage[T any](data []T, total int, f ListFilter) Page[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if f.PageSize > 0 {
		totalPages = total / f.PageSize
		if total%f.PageSize != 0 {
			totalPages++
		}
	}

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}
}

// Stats holds entity counts for the admin dashboard.
type Stats struct {
	TeamMembers   int `json:"teamMembers"`
	Brands        int `json:"brands"`
	ChildContents int `json:"childContents"`
	Services      int `json:"services"`
}
