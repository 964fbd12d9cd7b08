package pipeline

import "strconv"

const (
	// DefaultPageSize applies when the limit parameter is absent or
	// unparseable.
	DefaultPageSize = 10
	// MaxPageSize caps the limit parameter.
	MaxPageSize = 100
)

// Page is a normalized pagination request. Number and Size are
// always >= 1.
type Page struct {
	Number int
	Size   int
}

// NormalizePage coerces raw page/limit query values into a valid Page.
// Absent, non-numeric, zero or negative input falls back to the
// defaults; it never produces a negative offset.
func NormalizePage(pageStr, limitStr string) Page {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Page{Number: page, Size: limit}
}

// Offset returns the number of documents to skip.
func (p Page) Offset() int64 {
	return int64(p.Number-1) * int64(p.Size)
}

// Limit returns the page size.
func (p Page) Limit() int64 {
	return int64(p.Size)
}
