// Package names converts registrar-formatted student names into
// display-friendly preferred and full names.
//
// The registrar provides names in all uppercase, in one of two layouts:
//
//	LAST, FIRST MIDDLE, SUFFIX
//	LAST, PREFERRED (FIRST)
//
// The second layout appears when a student has registered a preferred name
// distinct from their legal first name; the parenthesized portion holds the
// legal first name.
package names

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// FormatError reports a name string that does not match either registrar
// layout.
type FormatError struct {
	Name   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse name %q: %s", e.Name, e.Reason)
}

var parensFormat = regexp.MustCompile(`(.*)[(](.*)[)](.*)`)

// Format parses a registrar-formatted name and returns the preferred name
// ("First Last", or just "Last" when no first name is present) and the full
// legal name (real first name, middle names, last name, suffix). The full
// name always uses the legal first name, never the informal preferred one.
func Format(raw string) (preferred, full string, err error) {
	if strings.TrimSpace(raw) == "" {
		return "", "", &FormatError{Name: raw, Reason: "empty name"}
	}

	name := strings.ToLower(raw)

	realFirst := ""
	if m := parensFormat.FindStringSubmatch(name); m != nil {
		name = m[1]
		if strings.TrimSpace(m[2]) == "" {
			return "", "", &FormatError{Name: raw, Reason: "empty parentheses"}
		}
		if m[3] != "" {
			return "", "", &FormatError{Name: raw, Reason: "unexpected characters after parentheses"}
		}
		realFirst = FixCase(m[2])
	}

	components := strings.Split(name, ", ")
	if len(components) > 3 {
		return "", "", &FormatError{Name: raw, Reason: "too many components"}
	}

	suffix := ""
	if len(components) == 3 {
		suffix = strings.ToUpper(components[2])
		if suffix == "JR" || suffix == "SR" {
			suffix = suffix[:1] + strings.ToLower(suffix[1:])
		}
	}

	first, middle := "", ""
	if len(components) >= 2 {
		if realFirst != "" {
			// Preferred-name layout carries no middle name.
			first = FixCase(components[1])
		} else {
			first, middle, _ = strings.Cut(components[1], " ")
			first = FixCase(first)
			middle = FixCase(middle)
			realFirst = first
		}
	}
	last := FixCase(components[0])

	if first != "" {
		preferred = first + " " + last
	} else {
		preferred = last
	}
	full = joinNonEmpty(realFirst, middle, last, suffix)
	return preferred, full, nil
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// Particles that stay lower-case even as standalone words.
var lowerParticles = map[string]bool{
	"de": true, "el": true, "la": true, "los": true, "las": true,
}

// FixCase corrects the case of an entire name, word by word.
func FixCase(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = fixCaseHyphenated(word)
	}
	return strings.Join(words, " ")
}

// fixCaseHyphenated corrects a single possibly-hyphenated word.
func fixCaseHyphenated(word string) string {
	if lowerParticles[strings.ToLower(word)] {
		return strings.ToLower(word)
	}
	parts := strings.Split(word, "-")
	for i, part := range parts {
		parts[i] = fixCaseWord(part)
	}
	return strings.Join(parts, "-")
}

// fixCaseWord corrects a single non-hyphenated word: capitalize the first
// letter, lower-case the rest, then re-capitalize the third letter after the
// prefixes Mc, O' and D'.
func fixCaseWord(word string) string {
	r := []rune(strings.ToLower(word))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	if len(r) > 2 && (strings.HasPrefix(string(r), "Mc") ||
		strings.HasPrefix(string(r), "O'") || strings.HasPrefix(string(r), "D'")) {
		r[2] = unicode.ToUpper(r[2])
	}
	return string(r)
}
