package domain

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest is zero-based like the rest of the API surface.
type PageRequest struct {
	Number int
	Size   int
}

func (p PageRequest) Normalize() PageRequest {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"total_elements"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalPages    int   `json:"total_pages"`
}

func NewPage[T any](content []T, total int64, req PageRequest) Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalPages:    totalPages,
	}
}
