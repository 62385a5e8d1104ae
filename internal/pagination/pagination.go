// Package pagination implements the windowing rules shared by every list
// endpoint: a single default page size, two interchangeable addressing modes
// (offset or page number) and metadata describing the returned slice.
package pagination

import (
	"errors"
	"strconv"
)

// DefaultLimit is the page size applied when the client does not send one.
const DefaultLimit = 10

// ErrInvalidLimit reports an explicit page size of zero or less, for which
// page arithmetic is undefined.
var ErrInvalidLimit = errors.New("page size must be greater than zero")

// Query carries the raw, unparsed paging parameters of a list request.
// Missing or non-numeric values fall back to defaults rather than failing.
// When both Offset and Page are sent, the explicit offset wins.
type Query struct {
	Limit  string
	Offset string
	Page   string
}

// Meta describes the window a list response carries.
type Meta struct {
	Total       int  `json:"total"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
	HasPrevious bool `json:"hasPrevious"`
}

// Slice pages items according to q. The start index is the explicit offset
// when one was sent, otherwise (page-1)*limit with pages clamped to 1. An
// out-of-range start yields an empty slice with metadata still describing
// the full collection.
func Slice[T any](items []T, q Query) ([]T, Meta, error) {
	limit := intOrDefault(q.Limit, DefaultLimit)
	if limit <= 0 {
		return nil, Meta{}, ErrInvalidLimit
	}

	start, explicit := parseInt(q.Offset)
	if !explicit {
		page := intOrDefault(q.Page, 1)
		if page < 1 {
			page = 1
		}
		start = (page - 1) * limit
	}
	if start < 0 {
		start = 0
	}

	total := len(items)
	meta := Meta{
		Total:       total,
		Limit:       limit,
		Offset:      start,
		Page:        start/limit + 1,
		TotalPages:  (total + limit - 1) / limit,
		HasMore:     start+limit < total,
		HasPrevious: start > 0,
	}

	if start >= total {
		return []T{}, meta, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], meta, nil
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func intOrDefault(raw string, def int) int {
	if n, ok := parseInt(raw); ok {
		return n
	}
	return def
}
