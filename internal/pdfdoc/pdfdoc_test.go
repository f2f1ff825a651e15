package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePDFFile(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "roster.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))
	txtPath := filepath.Join(dir, "roster.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("nope"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid", pdfPath, false},
		{"empty_path", "", true},
		{"missing_file", filepath.Join(dir, "nope.pdf"), true},
		{"directory", dir, true},
		{"wrong_extension", txtPath, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePDFFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	// Cells fill left to right, top to bottom.
	first := cellRect(0)
	assert.Equal(t, firstCellX, first.X)
	assert.Equal(t, firstCellY, first.Y)

	second := cellRect(1)
	assert.Equal(t, firstCellX+cellStrideX, second.X)
	assert.Equal(t, firstCellY, second.Y)

	third := cellRect(2)
	assert.Equal(t, firstCellX, third.X)
	assert.Equal(t, firstCellY+cellStrideY, third.Y)
}

func TestPageHeightDefault(t *testing.T) {
	assert.Equal(t, defaultPageHeight, pageHeight(pdf.Page{}))
}

func TestOpenRejectsNonPDF(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
