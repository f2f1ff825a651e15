package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NoteTypeName is the note type holding student records in the collection.
const NoteTypeName = "Names and faces"

// ErrNoteTypeMissing is returned when the collection database has no
// note type named NoteTypeName.
var ErrNoteTypeMissing = errors.New(`collection has no "Names and faces" note type`)

// fieldSep separates the fields of a note's field blob.
const fieldSep = "\x1f"

// LoadCollection reads existing records out of an Anki collection database.
// Notes of the "Names and faces" note type carry their fields as a single
// blob (id, image tag, preferred name, full name) split on a control
// character, with tags stored separately.
func LoadCollection(path string) (Records, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot access collection %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}
	defer db.Close()

	modelID, err := findNoteType(db, NoteTypeName)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT flds, tags FROM notes WHERE mid = ?`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	records := Records{}
	for rows.Next() {
		var flds, tags string
		if err := rows.Scan(&flds, &tags); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		fields := strings.Split(flds, fieldSep)
		if len(fields) < 4 {
			return nil, fmt.Errorf("note has %d fields, expected at least 4", len(fields))
		}
		records[fields[0]] = Record{
			Preferred: fields[2],
			Full:      fields[3],
			Tags:      strings.TrimSpace(tags),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return records, nil
}

// findNoteType resolves a note type name to its model ID. Note types live
// as a JSON object in the single col row, keyed by model ID.
func findNoteType(db *sql.DB, name string) (string, error) {
	var modelsJSON string
	if err := db.QueryRow(`SELECT models FROM col`).Scan(&modelsJSON); err != nil {
		return "", fmt.Errorf("read note types: %w", err)
	}

	var models map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(modelsJSON), &models); err != nil {
		return "", fmt.Errorf("decode note types: %w", err)
	}
	for id, model := range models {
		if model.Name == name {
			return id, nil
		}
	}
	return "", ErrNoteTypeMissing
}
