package pagination

import (
	"fmt"
	"math"

	"github.com/SscSPs/digital_banking/internal/apperrors"
)

// MaxPageSize bounds the size of a single history page.
const MaxPageSize = 100

// MaxOffset bounds the rows a page may skip, keeping Offset representable.
const MaxOffset = math.MaxInt32

// Page is a zero-indexed page request.
type Page struct {
	Number int
	Size   int
}

// NewPage validates a page request. Sizes above MaxPageSize are capped.
func NewPage(number, size int) (Page, error) {
	if number < 0 {
		return Page{}, fmt.Errorf("%w: page must be >= 0, got %d", apperrors.ErrValidation, number)
	}
	if size <= 0 {
		return Page{}, fmt.Errorf("%w: size must be > 0, got %d", apperrors.ErrValidation, size)
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if number > MaxOffset/size {
		return Page{}, fmt.Errorf("%w: page %d is out of range", apperrors.ErrValidation, number)
	}
	return Page{Number: number, Size: size}, nil
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Limit returns the maximum number of rows on this page.
func (p Page) Limit() int {
	return p.Size
}

// TotalPages returns ceil(total/size), or 0 when there is nothing to page.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
