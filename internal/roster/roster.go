// Package roster extracts structured student records from a photo roster
// document. Each page of the six-per-page template holds up to six student
// cells; a cell is anchored by its photo region, with the student ID and
// name rendered at fixed offsets from the photo's top-left corner.
//
// The package is engine-agnostic: it consumes the Document/Page capability
// interface, so the extraction algorithm can be exercised with synthetic
// fixtures as well as real PDF files.
package roster

import (
	"github.com/ankitools/photoroster/internal/names"
)

// StudentsPerPage is the cell capacity of one page of the roster template.
// Every page except possibly the last is assumed full.
const StudentsPerPage = 6

// Roster is a photo roster document. It wraps a Document and exposes the
// parsed course tag plus an iterator over the students it lists.
type Roster struct {
	doc Document
	tag string
}

// Open wraps a document as a photo roster. The course header on page 1 is
// parsed immediately, so an Open that succeeds has already established that
// the document looks like a roster.
func Open(doc Document) (*Roster, error) {
	page, err := doc.Page(1)
	if err != nil {
		return nil, err
	}
	chars, err := page.Chars()
	if err != nil {
		return nil, err
	}
	header, ok := firstTextLine(chars)
	if !ok {
		return nil, &ParseError{PageNumber: 1, Message: "no text on first page"}
	}
	tag, err := parseCourseTag(header)
	if err != nil {
		return nil, err
	}
	return &Roster{doc: doc, tag: tag}, nil
}

// CourseTag returns the canonical course tag parsed from the roster header,
// e.g. "MATH115A1-LEC-Fall-2013".
func (r *Roster) CourseTag() string {
	return r.tag
}

// NumStudents estimates the number of students in the roster without a full
// parse, by assuming every page except the last holds StudentsPerPage
// students. The estimate is intended for progress reporting only.
func (r *Roster) NumStudents() (int, error) {
	n := r.doc.PageCount()
	last, err := r.doc.Page(n)
	if err != nil {
		return 0, err
	}
	images, err := last.Images()
	if err != nil {
		return 0, err
	}
	return (n-1)*StudentsPerPage + len(images), nil
}

// Students returns a fresh iterator over every student in the roster. Pages
// are parsed lazily as the iterator advances; calling Students again
// restarts from the beginning.
func (r *Roster) Students() *Iter {
	return &Iter{roster: r}
}

// Close releases the underlying document.
func (r *Roster) Close() error {
	return r.doc.Close()
}

// firstTextLine returns the topmost text line of a whole page.
func firstTextLine(chars []Char) (string, bool) {
	everything := Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}
	return topTextLine(chars, everything)
}

// Iter iterates over the students of a roster, one cell at a time, in page
// order. Usage follows the scanner idiom:
//
//	it := r.Students()
//	for it.Next() {
//		s := it.Student()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type Iter struct {
	roster  *Roster
	pageNum int
	chars   []Char
	images  []Image
	idx     int
	cur     *Student
	err     error
}

// Next advances to the next student. It returns false when the roster is
// exhausted or an error occurred; the two cases are distinguished by Err.
func (it *Iter) Next() bool {
	if it.err != nil {
		return false
	}
	for it.idx >= len(it.images) {
		if it.pageNum >= it.roster.doc.PageCount() {
			return false
		}
		it.pageNum++
		if it.err = it.loadPage(it.pageNum); it.err != nil {
			return false
		}
	}

	image := it.images[it.idx]
	it.idx++
	it.cur, it.err = it.buildStudent(image)
	return it.err == nil
}

// Student returns the student produced by the last successful call to Next.
func (it *Iter) Student() *Student {
	return it.cur
}

// Err returns the error that terminated iteration, if any. Any error here
// is fatal to the whole roster: there is no partial-roster recovery.
func (it *Iter) Err() error {
	return it.err
}

func (it *Iter) loadPage(n int) error {
	page, err := it.roster.doc.Page(n)
	if err != nil {
		return err
	}
	if it.chars, err = page.Chars(); err != nil {
		return err
	}
	if it.images, err = page.Images(); err != nil {
		return err
	}
	it.idx = 0
	return nil
}

func (it *Iter) buildStudent(image Image) (*Student, error) {
	id, ok := topTextLine(it.chars, idBand(image.Rect))
	if !ok {
		return nil, &ParseError{PageNumber: it.pageNum, Message: "no ID number next to photo"}
	}
	rawName, ok := topTextLine(it.chars, nameBand(image.Rect))
	if !ok {
		return nil, &ParseError{PageNumber: it.pageNum, Context: id, Message: "no name under photo"}
	}
	preferred, full, err := names.Format(rawName)
	if err != nil {
		return nil, err
	}
	return &Student{
		IDNumber:  id,
		Preferred: preferred,
		Full:      full,
		Tags:      []string{it.roster.tag},
		Photo:     image.Photo,
	}, nil
}
