package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ankitools/photoroster/internal/store"
)

// MergeImports merges a sorted stream of import lines, folding consecutive
// lines that belong to the same student (their full-name fields are
// concatenated) and appending the tags already known for each student from
// the existing record set. The input is assumed sorted by student ID.
func MergeImports(existing store.Records, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	last := ""
	lastID := ""
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		id := idField(line)
		if last != "" && id == lastID {
			if full := fullNameField(line); full != "" {
				last += " " + full
			}
			continue
		}
		if last != "" {
			if _, err := fmt.Fprintln(out, last); err != nil {
				return fmt.Errorf("write merged line: %w", err)
			}
		}
		last, lastID = line, id
		if record, ok := existing[id]; ok && record.Tags != "" {
			// The tags field is last, so known tags can be appended in place.
			last += " " + record.Tags
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read import lines: %w", err)
	}
	if last != "" {
		if _, err := fmt.Fprintln(out, last); err != nil {
			return fmt.Errorf("write merged line: %w", err)
		}
	}
	return nil
}

func idField(line string) string {
	id, _, _ := strings.Cut(line, ";")
	return id
}

func fullNameField(line string) string {
	fields := strings.Split(line, ";")
	if len(fields) > 3 {
		return fields[3]
	}
	return ""
}
