package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one page of items plus navigation metadata.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"` // 1-based
	PageSize int   `json:"pageSize"`
	HasNext  bool  `json:"hasNext"`
	HasPrev  bool  `json:"hasPrev"`
	Total    int64 `json:"total"`
}

// Request is a normalised page request.
type Request struct {
	Page     int
	PageSize int
}

// NewRequest clamps page and pageSize to sane values. Out of range input falls
// back to the defaults instead of failing.
func NewRequest(page, pageSize int) Request {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Request{Page: page, PageSize: pageSize}
}

func (r Request) Limit() int {
	return r.PageSize
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// NewPage wraps items already fetched with Limit/Offset.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	end := int64(req.Offset() + len(items))
	return Page[T]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		HasNext:  end < total,
		HasPrev:  req.Page > 1,
		Total:    total,
	}
}

// Map converts the items of a page, keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, fn(item))
	}
	return Page[U]{
		Items:    out,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
		HasPrev:  p.HasPrev,
		Total:    p.Total,
	}
}
