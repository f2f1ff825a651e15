// Package importer drives a full photo roster import: it walks the roster,
// persists each student's photo, reconciles names and tags against the
// existing record set, writes the import file, and reports students who
// were previously enrolled but are missing from the current roster.
package importer

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/ankitools/photoroster/internal/reconcile"
	"github.com/ankitools/photoroster/internal/roster"
	"github.com/ankitools/photoroster/internal/store"
)

// Options configures an import run.
type Options struct {
	// Roster is the parsed photo roster to import.
	Roster *roster.Roster

	// Existing is the pre-existing record set; may be empty on a first
	// import.
	Existing store.Records

	// PhotoDir is the directory photos are persisted into.
	PhotoDir string

	// Output receives one import line per student.
	Output io.Writer

	// Log receives warnings. Nil means the default logger.
	Log *log.Logger
}

// Summary reports what an import run did.
type Summary struct {
	// Imported is the number of students written to the output.
	Imported int

	// NameConflicts is the number of students whose freshly parsed names
	// differed from the existing set. The existing names won.
	NameConflicts int

	// Backups lists the backup paths produced by photo replacement.
	Backups []string

	// Dropped lists students ("Preferred (Full)") who carry this course's
	// tag in the existing set but were not on the roster.
	Dropped []string
}

// Run performs a full import. Parse errors abort the run; name conflicts
// and photo replacements are recovered locally and reported as warnings.
func (o Options) Run() (*Summary, error) {
	logger := o.Log
	if logger == nil {
		logger = log.Default()
	}

	summary := &Summary{}
	members := reconcile.CourseMembers(o.Existing, o.Roster.CourseTag())

	it := o.Roster.Students()
	for it.Next() {
		s := it.Student()
		delete(members, s.IDNumber)

		if err := o.processStudent(s, logger, summary); err != nil {
			return nil, err
		}

		if _, err := fmt.Fprintln(o.Output, s.String()); err != nil {
			return nil, fmt.Errorf("write import line: %w", err)
		}
		summary.Imported++
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	for id := range members {
		record := o.Existing[id]
		summary.Dropped = append(summary.Dropped,
			fmt.Sprintf("%s (%s)", record.Preferred, record.Full))
	}
	sort.Strings(summary.Dropped)

	return summary, nil
}

func (o Options) processStudent(s *roster.Student, logger *log.Logger, summary *Summary) error {
	data, err := s.Photo.Bytes()
	if err != nil {
		return fmt.Errorf("read photo for %s: %w", s.IDNumber, err)
	}
	backup, err := reconcile.SavePhoto(o.PhotoDir, s.Filename(), data)
	if err != nil {
		return fmt.Errorf("save photo for %s: %w", s.IDNumber, err)
	}
	if backup != "" {
		summary.Backups = append(summary.Backups, backup)
		logger.Printf("WARNING: a different photo already exists for %s; the old one was kept as %s",
			s.Preferred, backup)
	}

	existing, ok := o.Existing[s.IDNumber]
	if !ok {
		return nil
	}
	merged, diffs := reconcile.Resolve(existing, reconcile.Identity{
		Preferred: s.Preferred,
		Full:      s.Full,
		Tags:      s.Tags,
	})
	if len(diffs) > 0 {
		summary.NameConflicts++
		logger.Printf("WARNING: names don't match up for %s (keeping the existing ones):", s.IDNumber)
		for _, diff := range diffs {
			logger.Printf("    %s", diff)
		}
	}
	s.Preferred = merged.Preferred
	s.Full = merged.Full
	s.Tags = merged.Tags
	return nil
}
