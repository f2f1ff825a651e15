// Package pdfdoc implements the roster document interface on top of real
// PDF files. Positioned text comes from ledongthuc/pdf; embedded photo
// bytes come from pdfcpu. Photo regions are anchored to the fixed
// two-column, three-row cell grid of the six-per-page roster template.
package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ankitools/photoroster/internal/roster"
)

// Cell grid geometry of the six-per-page roster template, in points from
// the top-left corner of the page. Like the text band offsets, these are
// calibration constants tied to the template, not load-bearing structure.
const (
	gridColumns = 2

	firstCellX  = 36.0
	firstCellY  = 90.0
	cellStrideX = 280.0
	cellStrideY = 235.0

	photoWidth  = 160.0
	photoHeight = 190.0
)

const defaultPageHeight = 792.0 // US Letter, when no MediaBox is found

// Document adapts a PDF file to the roster.Document interface.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	ctx    *model.Context
}

// Open validates and opens a roster PDF.
func Open(path string) (*Document, error) {
	if err := validatePDFFile(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	ctx, err := readContext(path)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Document{path: path, file: f, reader: reader, ctx: ctx}, nil
}

// validatePDFFile performs basic validation on a PDF file path.
func validatePDFFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	return nil
}

// readContext reads the pdfcpu context used for image extraction.
func readContext(path string) (*model.Context, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}
	return ctx, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Page returns the page with the given 1-based number.
func (d *Document) Page(n int) (roster.Page, error) {
	if n < 1 || n > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)",
			n, d.reader.NumPage())
	}
	return &page{doc: d, num: n}, nil
}

// Close closes the backing file.
func (d *Document) Close() error {
	return d.file.Close()
}

// page adapts one PDF page. Text and images are extracted on demand.
type page struct {
	doc *Document
	num int
}

// Chars returns every positioned character on the page, converted to the
// top-left/y-down coordinate system the extraction bands are calibrated in.
func (p *page) Chars() ([]roster.Char, error) {
	ldPage := p.doc.reader.Page(p.num)
	if ldPage.V.IsNull() {
		return nil, fmt.Errorf("page %d has no content", p.num)
	}

	height := pageHeight(ldPage)
	content := ldPage.Content()

	var chars []roster.Char
	for _, text := range content.Text {
		runes := []rune(text.S)
		for i, r := range runes {
			// Approximate per-rune positions by spreading the run's width.
			x := text.X + text.W*float64(i)/float64(len(runes))
			chars = append(chars, roster.Char{
				R: r,
				X: x,
				Y: height - text.Y,
			})
		}
	}
	return chars, nil
}

// Images returns the photo regions on the page. pdfcpu yields the raw
// image bytes; regions are paired with grid cells in reading order, since
// the template fills cells left to right, top to bottom.
func (p *page) Images() ([]roster.Image, error) {
	extracted, err := pdfcpu.ExtractPageImages(p.doc.ctx, p.num, false)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from page %d: %w", p.num, err)
	}

	objNrs := make([]int, 0, len(extracted))
	for objNr := range extracted {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	images := make([]roster.Image, 0, len(objNrs))
	for i, objNr := range objNrs {
		data, err := io.ReadAll(extracted[objNr])
		if err != nil {
			return nil, fmt.Errorf("failed to read image %d on page %d: %w", objNr, p.num, err)
		}
		images = append(images, roster.Image{
			Rect:  cellRect(i),
			Photo: &photoAsset{data: data},
		})
	}
	return images, nil
}

// cellRect returns the photo region of the i-th cell on a page, in reading
// order.
func cellRect(i int) roster.Rect {
	col := i % gridColumns
	row := i / gridColumns
	return roster.Rect{
		X: firstCellX + float64(col)*cellStrideX,
		Y: firstCellY + float64(row)*cellStrideY,
		W: photoWidth,
		H: photoHeight,
	}
}

// pageHeight resolves the page height from the MediaBox, walking up the
// page tree for inherited values.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// photoAsset holds the extracted bytes of one photo.
type photoAsset struct {
	data []byte
}

func (a *photoAsset) Bytes() ([]byte, error) {
	return a.data, nil
}
