package kernel

import "errands/internal/pkg/errs"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is an offset/limit window over a listing.
type Page struct {
	offset int
	limit  int
}

// NewPage builds a page. A zero limit falls back to DefaultPageLimit.
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{offset: offset, limit: limit}, nil
}

// DefaultPage is offset 0, limit DefaultPageLimit.
func DefaultPage() Page {
	return Page{offset: 0, limit: DefaultPageLimit}
}

func (p Page) Offset() int {
	return p.offset
}

// Limit returns the page size; the zero Page reports DefaultPageLimit.
func (p Page) Limit() int {
	if p.limit == 0 {
		return DefaultPageLimit
	}
	return p.limit
}
