package page

// DefaultSize is used when a request does not specify a page size.
const DefaultSize = 10

// Request describes a zero-based page request.
type Request struct {
	Number int
	Size   int
}

// NewRequest normalizes a page request: negative numbers become zero and a
// non-positive size falls back to DefaultSize.
func NewRequest(number, size int) Request {
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		size = DefaultSize
	}
	return Request{Number: number, Size: size}
}

// Offset returns the row offset of the first element of the page.
func (r Request) Offset() int {
	return r.Number * r.Size
}

// Result is one page of content together with pagination metadata.
type Result[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewResult assembles a page result, deriving TotalPages from the total
// element count and the request size.
func NewResult[T any](content []T, req Request, totalElements int64) Result[T] {
	totalPages := int((totalElements + int64(req.Size) - 1) / int64(req.Size))
	return Result[T]{
		Content:       content,
		Number:        req.Number,
		Size:          req.Size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
