package roster

import (
	"fmt"
	"strings"
)

// Rect is a rectangle in page coordinates: origin at the top-left corner of
// the page, y growing downward, units in points.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point (x, y) falls inside the rectangle,
// boundaries included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Char is a single positioned character on a page. X and Y locate the
// character's top-left anchor; characters on the same text line share the
// same Y.
type Char struct {
	R rune
	X float64
	Y float64
}

// Asset provides deferred access to a photo's raw bytes. The bytes are only
// materialized when the photo is persisted.
type Asset interface {
	Bytes() ([]byte, error)
}

// Image is an embedded photo region on a page.
type Image struct {
	Rect  Rect
	Photo Asset
}

// Page is one page of a roster document.
type Page interface {
	// Chars returns every positioned character on the page in document order.
	Chars() ([]Char, error)
	// Images returns the embedded photo regions on the page in reading order.
	Images() ([]Image, error)
}

// Document is the narrow slice of a document engine the roster parser
// needs. Implementations are expected to be single-use and single-threaded.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int
	// Page returns the page with the given 1-based number.
	Page(n int) (Page, error)
	Close() error
}

// ParseError reports a document that does not match the expected roster
// template. A ParseError aborts the whole run: a malformed header or an
// empty text band usually means the template assumptions are wrong for the
// entire document.
type ParseError struct {
	PageNumber int
	Context    string
	Message    string
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("page %d: %s: %q", e.PageNumber, e.Message, e.Context)
	}
	return fmt.Sprintf("page %d: %s", e.PageNumber, e.Message)
}

// Student is a single student's record parsed from a roster: identity,
// display names, tags and the photo asset.
type Student struct {
	IDNumber  string
	Preferred string
	Full      string
	Tags      []string
	Photo     Asset
}

// Filename returns the canonical photo filename for this student.
func (s *Student) Filename() string {
	return fmt.Sprintf("UCLA_Student_%s.jpg", s.IDNumber)
}

// String renders the student as one import line: five fields joined by
// semicolons, with the photo referenced by an HTML img tag.
func (s *Student) String() string {
	imgTag := fmt.Sprintf(`<img src="%s">`, s.Filename())
	return strings.Join([]string{
		s.IDNumber, imgTag, s.Preferred, s.Full, strings.Join(s.Tags, " "),
	}, ";")
}
