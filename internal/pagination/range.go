// internal/pagination/range.go
package pagination

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/constraints"
)

// maxFullRange is the largest page count shown without gaps.
const maxFullRange = 5

// Generator builds compact pagination strips such as "1 2 3 ... 9 10".
// It holds no state besides its logger and is safe for concurrent use.
type Generator struct {
	log Logger
}

// New returns a generator reporting to log. A nil log writes to stderr.
func New(log Logger) *Generator {
	if log == nil {
		log = stderrLogger()
	}
	return &Generator{log: log}
}

var defaultGenerator = sync.OnceValue(func() *Generator { return New(nil) })

// Generate builds the strip for currentPage of totalPages with the default generator.
func Generate(currentPage, totalPages int) []Entry {
	return defaultGenerator().Range(currentPage, totalPages)
}

// Range returns the strip for currentPage of totalPages.
//
// It never panics. A totalPages below 1 yields [1]; a currentPage outside
// [1, totalPages] is clamped to the nearest bound. Every correction is
// reported to the logger as a warning.
func (g *Generator) Range(currentPage, totalPages int) []Entry {
	if totalPages < 1 {
		g.log.Warn(fmt.Sprintf("pagination: totalPages must be at least 1, got %d", totalPages))
		return fallback()
	}
	if currentPage < 1 {
		g.log.Warn(fmt.Sprintf("pagination: currentPage %d is below 1, using 1", currentPage))
		currentPage = 1
	}
	if currentPage > totalPages {
		g.log.Warn(fmt.Sprintf("pagination: currentPage %d exceeds totalPages %d, using %d", currentPage, totalPages, totalPages))
		currentPage = totalPages
	}

	entries, err := build(currentPage, totalPages)
	if err != nil {
		g.log.Error("pagination: failed to build page range, falling back to first page", err)
		return fallback()
	}
	return entries
}

// RangeOf is Range for values of unknown type, e.g. decoded JSON or query input.
// Non-numeric arguments and numbers that are not whole yield [1].
func (g *Generator) RangeOf(currentPage, totalPages any) []Entry {
	current, currentIntegral, currentNumeric := asInt(currentPage)
	total, totalIntegral, totalNumeric := asInt(totalPages)

	if !currentNumeric || !totalNumeric {
		g.log.Warn(fmt.Sprintf("pagination: currentPage and totalPages must be numbers, got %T and %T", currentPage, totalPages))
		return fallback()
	}
	if !currentIntegral || !totalIntegral {
		g.log.Warn(fmt.Sprintf("pagination: currentPage and totalPages must be integers, got %v and %v", currentPage, totalPages))
		return fallback()
	}
	return g.Range(current, total)
}

// RangeFor is Range for any integer type.
func RangeFor[T constraints.Integer](g *Generator, currentPage, totalPages T) []Entry {
	current, currentOK := narrow(currentPage)
	total, totalOK := narrow(totalPages)
	if !currentOK || !totalOK {
		g.log.Warn(fmt.Sprintf("pagination: currentPage and totalPages must fit in an int, got %d and %d", currentPage, totalPages))
		return fallback()
	}
	return g.Range(current, total)
}

func fallback() []Entry {
	return []Entry{Page(1)}
}

// layoutFunc is swapped in tests to exercise the recovery path.
var layoutFunc = layout

// build runs layout and turns a runtime panic into an error.
func build(currentPage, totalPages int) (entries []Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d of %d: %v", currentPage, totalPages, r)
			entries = nil
		}
	}()
	return layoutFunc(currentPage, totalPages), nil
}

// layout expects 1 <= currentPage <= totalPages.
func layout(currentPage, totalPages int) []Entry {
	switch {
	case totalPages <= maxFullRange:
		entries := make([]Entry, 0, totalPages)
		for n := 1; n <= totalPages; n++ {
			entries = append(entries, Page(n))
		}
		return entries
	case currentPage <= 3:
		return []Entry{Page(1), Page(2), Page(3), Ellipsis(), Page(totalPages - 1), Page(totalPages)}
	case currentPage >= totalPages-2:
		return []Entry{Page(1), Page(2), Ellipsis(), Page(totalPages - 2), Page(totalPages - 1), Page(totalPages)}
	default:
		return []Entry{
			Page(1), Ellipsis(),
			Page(currentPage - 1), Page(currentPage), Page(currentPage + 1),
			Ellipsis(), Page(totalPages),
		}
	}
}

// asInt reports whether v is a number and, if so, whether it is a whole
// number that fits in an int.
func asInt(v any) (n int, integral, numeric bool) {
	switch x := v.(type) {
	case int:
		return x, true, true
	case int8:
		return int(x), true, true
	case int16:
		return int(x), true, true
	case int32:
		return int(x), true, true
	case int64:
		n, ok := narrow(x)
		return n, ok, true
	case uint:
		n, ok := narrow(x)
		return n, ok, true
	case uint8:
		return int(x), true, true
	case uint16:
		return int(x), true, true
	case uint32:
		n, ok := narrow(x)
		return n, ok, true
	case uint64:
		n, ok := narrow(x)
		return n, ok, true
	case float32:
		n, ok := wholeFloat(float64(x))
		return n, ok, true
	case float64:
		n, ok := wholeFloat(x)
		return n, ok, true
	default:
		return 0, false, false
	}
}

func narrow[T constraints.Integer](v T) (int, bool) {
	n := int(v)
	if T(n) != v || (n < 0) != (v < 0) {
		return 0, false
	}
	return n, true
}

// 2^63, the first float64 past the int64 range.
const int64Bound = 9223372036854775808.0

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -int64Bound || f >= int64Bound {
		return 0, false
	}
	return narrow(int64(f))
}
