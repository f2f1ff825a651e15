package roster

import (
	"sort"
	"strings"
)

// Text band offsets within a student cell, relative to the top-left corner
// of the photo region. These are calibration constants for the six-per-page
// roster template.
const (
	idBandXMin = 169
	idBandXMax = 270

	nameBandXMax = 270
	nameBandYMin = 197
	nameBandYMax = 216
)

// idBand returns the rectangle holding the student ID number for the cell
// anchored at the given photo region.
func idBand(photo Rect) Rect {
	return Rect{
		X: photo.X + idBandXMin,
		Y: photo.Y,
		W: idBandXMax - idBandXMin,
		H: photo.H,
	}
}

// nameBand returns the rectangle holding the student name for the cell
// anchored at the given photo region.
func nameBand(photo Rect) Rect {
	return Rect{
		X: photo.X,
		Y: photo.Y + nameBandYMin,
		W: nameBandXMax,
		H: nameBandYMax - nameBandYMin,
	}
}

// topTextLine returns the topmost line of text within an area of a page:
// all in-band characters are grouped by their line's vertical coordinate,
// and the characters of the topmost line are concatenated left to right and
// trimmed. The ID and name may sit near wrapped or unrelated text below the
// band's first line, so only that first line is trusted. Finding no
// characters at all is the caller's error to report.
func topTextLine(chars []Char, band Rect) (string, bool) {
	lines := make(map[float64][]Char)
	for _, c := range chars {
		if c.R == '\n' {
			continue
		}
		if band.Contains(c.X, c.Y) {
			lines[c.Y] = append(lines[c.Y], c)
		}
	}
	if len(lines) == 0 {
		return "", false
	}

	topY := 0.0
	first := true
	for y := range lines {
		if first || y < topY {
			topY = y
			first = false
		}
	}

	line := lines[topY]
	sort.Slice(line, func(i, j int) bool { return line[i].X < line[j].X })
	var b strings.Builder
	for _, c := range line {
		b.WriteRune(c.R)
	}
	return strings.TrimSpace(b.String()), true
}
