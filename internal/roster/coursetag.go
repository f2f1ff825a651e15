package roster

import (
	"fmt"
	"regexp"
	"strings"
)

const headerPrefix = "Photo Roster for "

// Header layout after the prefix: subject, course number, section token,
// term code, then a dash and a trailing token that is not used.
var headerFormat = regexp.MustCompile(`^\s*(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+-\s+(\S+)\s*$`)

var termNames = map[byte]string{
	'W': "Winter",
	'S': "Spring",
	'1': "Summer",
	'F': "Fall",
}

// parseCourseTag turns the first text line of page 1 into the canonical
// course tag, e.g. "MATH115A 1 LEC 13F - ..." becomes
// "MATH115A1-LEC-Fall-2013".
func parseCourseTag(header string) (string, error) {
	if !strings.HasPrefix(header, headerPrefix) {
		return "", &ParseError{
			PageNumber: 1,
			Context:    header,
			Message:    "could not parse the course description",
		}
	}
	m := headerFormat.FindStringSubmatch(header[len(headerPrefix):])
	if m == nil {
		return "", &ParseError{
			PageNumber: 1,
			Context:    header,
			Message:    "could not parse the course description",
		}
	}
	subject, number, section, term := m[1], m[2], m[3], m[4]

	// Term codes look like "13F": a two-digit year followed by a one-letter
	// term abbreviation.
	if len(term) != 3 || !isDigits(term[:2]) {
		return "", &ParseError{
			PageNumber: 1,
			Context:    header,
			Message:    fmt.Sprintf("unrecognized term code %q", term),
		}
	}
	termName, ok := termNames[term[2]]
	if !ok {
		return "", &ParseError{
			PageNumber: 1,
			Context:    header,
			Message:    fmt.Sprintf("unrecognized term code %q", term),
		}
	}

	return fmt.Sprintf("%s%s-%s-%s-20%s", subject, number, section, termName, term[:2]), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
