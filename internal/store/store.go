// Package store loads the pre-existing student record set that new roster
// imports are reconciled against. Two sources are supported: a tab-separated
// export file, and an Anki collection database queried for notes of the
// "Names and faces" note type. The loaded set is a read-only snapshot; the
// reconciliation layer only queries it.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is one existing student entry.
type Record struct {
	Preferred string
	Full      string
	Tags      string
}

// Records maps a student ID number to its existing record.
type Records map[string]Record

// CollectionFile is the database filename inside an Anki profile directory.
const CollectionFile = "collection.anki2"

// Load loads existing records from the given source. An empty source is the
// valid first-import state and yields an empty set. A directory is treated
// as an Anki profile folder holding a collection database; anything else is
// read as a tab-separated export file.
func Load(source string) (Records, error) {
	if source == "" {
		return Records{}, nil
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("cannot access existing records %s: %w", source, err)
	}
	if info.IsDir() {
		return LoadCollection(filepath.Join(source, CollectionFile))
	}
	return LoadExport(source)
}

// LoadExport reads a tab-separated export file with seven fixed columns:
// id, url, preferred name, full name, two unused columns, tags. Fields may
// be wrapped in single quotes.
func LoadExport(path string) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open export file: %w", err)
	}
	defer f.Close()

	records := Records{}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			return nil, fmt.Errorf("%s:%d: expected 7 tab-separated fields, got %d",
				path, lineNum, len(fields))
		}
		for i, field := range fields {
			fields[i] = unquote(field)
		}
		records[fields[0]] = Record{
			Preferred: fields[2],
			Full:      fields[3],
			Tags:      fields[6],
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}
	return records, nil
}

// unquote strips the single-quote field quoting used by the export format.
func unquote(field string) string {
	if len(field) >= 2 && strings.HasPrefix(field, "'") && strings.HasSuffix(field, "'") {
		return field[1 : len(field)-1]
	}
	return field
}
