package entities

const (
	MinPageNumber = 1
	MaxPageSize   = 50
	DefaultPage   = 10
)

type PageRequest struct {
	Number int
	Size   int
}

// Normalized clamps the request to the service-wide limits: page numbers start
// at 1 and page size never exceeds MaxPageSize regardless of what was asked.
func (p PageRequest) Normalized() PageRequest {
	if p.Number < MinPageNumber {
		p.Number = MinPageNumber
	}
	if p.Size <= 0 {
		p.Size = DefaultPage
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

type Page[T any] struct {
	Items        []T
	Number       int
	Size         int
	TotalRecords int64
	TotalPages   int64
}

func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	totalPages := total / int64(req.Size)
	if total%int64(req.Size) != 0 {
		totalPages++
	}
	return Page[T]{
		Items:        items,
		Number:       req.Number,
		Size:         req.Size,
		TotalRecords: total,
		TotalPages:   totalPages,
	}
}
