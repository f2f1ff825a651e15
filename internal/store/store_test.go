package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptySourceIsFirstImport(t *testing.T) {
	records, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadMissingSource(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errUnwrapAll(err)))
}

func errUnwrapAll(err error) error {
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}

func TestLoadExport(t *testing.T) {
	content := "123456789\t<img src=\"UCLA_Student_123456789.jpg\">\tJohn Smith\t" +
		"John Robert Smith\t\t\tMATH115A1-LEC-Fall-2013\n" +
		"987654321\t<img src=\"UCLA_Student_987654321.jpg\">\t'Anna Lee'\t" +
		"'Anna Marie Lee'\t\t\t'CS32-1-Fall-2013 MATH115A1-LEC-Fall-2013'\n" +
		"\n"
	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := LoadExport(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Preferred: "John Smith",
		Full:      "John Robert Smith",
		Tags:      "MATH115A1-LEC-Fall-2013",
	}, records["123456789"])

	// Single-quoted fields are unwrapped.
	assert.Equal(t, Record{
		Preferred: "Anna Lee",
		Full:      "Anna Marie Lee",
		Tags:      "CS32-1-Fall-2013 MATH115A1-LEC-Fall-2013",
	}, records["987654321"])
}

func TestLoadExportWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(path, []byte("123\tonly\tthree\n"), 0o644))

	_, err := LoadExport(path)
	assert.Error(t, err)
}
