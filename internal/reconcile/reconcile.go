// Package reconcile merges freshly parsed student records against the
// existing record set and manages photo-file replacement. Name conflicts
// are non-fatal: the existing names win on the assumption that manual edits
// in the existing set are authoritative over re-scraped registrar data.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/ankitools/photoroster/internal/store"
)

// Identity is the mergeable part of a student record.
type Identity struct {
	Preferred string
	Full      string
	Tags      []string
}

// Resolve merges a freshly parsed identity with an existing record. The
// existing names always win; the returned diffs describe each name field
// that differed, one human-readable line per field, so any front end can
// surface them. Tags are merged with the existing order preserved and
// parsed tags appended only when not already present.
func Resolve(existing store.Record, parsed Identity) (Identity, []string) {
	merged := Identity{
		Preferred: existing.Preferred,
		Full:      existing.Full,
		Tags:      MergeTags(strings.Fields(existing.Tags), parsed.Tags),
	}

	var diffs []string
	if existing.Preferred != parsed.Preferred {
		diffs = append(diffs, fmt.Sprintf("preferred name was %s, new one is %s",
			existing.Preferred, parsed.Preferred))
	}
	if existing.Full != parsed.Full {
		diffs = append(diffs, fmt.Sprintf("full name was %s, new one is %s",
			existing.Full, parsed.Full))
	}
	return merged, diffs
}

// MergeTags appends to the existing tags every parsed tag not already
// present. Existing order is preserved; no duplicates are introduced.
func MergeTags(existing, parsed []string) []string {
	merged := make([]string, len(existing))
	copy(merged, existing)
	for _, tag := range parsed {
		if !containsTag(merged, tag) {
			merged = append(merged, tag)
		}
	}
	return merged
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CourseMembers returns the IDs of every existing record carrying the given
// course tag as a whole token. The caller removes each roster student's ID
// as it is processed; whatever remains afterwards is the set of previously
// enrolled students missing from the current roster.
func CourseMembers(records store.Records, tag string) map[string]bool {
	members := make(map[string]bool)
	for id, record := range records {
		if containsTag(strings.Fields(record.Tags), tag) {
			members[id] = true
		}
	}
	return members
}
