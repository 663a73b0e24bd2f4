// internal/pagination/entry.go
package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EllipsisText is how an ellipsis entry is rendered.
const EllipsisText = "..."

// Entry is one slot of a pagination strip: a page number or an ellipsis.
// The zero value is an ellipsis.
type Entry struct {
	page int
}

// Page returns an entry pointing at page n. Page numbers start at 1; n below
// 1 is not a page and yields the ellipsis.
func Page(n int) Entry {
	if n < 1 {
		return Ellipsis()
	}
	return Entry{page: n}
}

// Ellipsis returns the gap marker.
func Ellipsis() Entry {
	return Entry{}
}

// IsEllipsis reports whether e is the gap marker rather than a page.
func (e Entry) IsEllipsis() bool {
	return e.page == 0
}

// Number returns the page number and false for an ellipsis.
func (e Entry) Number() (int, bool) {
	if e.IsEllipsis() {
		return 0, false
	}
	return e.page, true
}

func (e Entry) String() string {
	if e.IsEllipsis() {
		return EllipsisText
	}
	return strconv.Itoa(e.page)
}

// MarshalJSON writes page numbers as JSON numbers and the ellipsis as "...".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsEllipsis() {
		return json.Marshal(EllipsisText)
	}
	return json.Marshal(e.page)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != EllipsisText {
			return fmt.Errorf("pagination: unexpected entry %q", s)
		}
		*e = Ellipsis()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pagination: entry is neither a page number nor %q: %w", EllipsisText, err)
	}
	if n < 1 {
		return fmt.Errorf("pagination: invalid page number %d", n)
	}
	*e = Page(n)
	return nil
}

// Pages returns entries for the given page numbers.
func Pages(numbers ...int) []Entry {
	entries := make([]Entry, len(numbers))
	for i, n := range numbers {
		entries[i] = Page(n)
	}
	return entries
}
