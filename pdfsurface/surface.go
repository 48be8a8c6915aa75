// Package pdfsurface implements layout.Surface on top of go-pdf/fpdf.
//
// Text is set in the core PDF fonts with the cp1252 code page, which covers
// Spanish. Letterhead backgrounds may be raster images or the first page of
// a PDF; verification codes are drawn as QR or PDF417 barcodes.
package pdfsurface

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"documentos/layout"
)

// Image keys registered by New.
const (
	BackgroundKey   = "letterhead"
	VerificationKey = "verification"
)

// Symbology selects the barcode drawn for a verification code.
type Symbology string

const (
	QR     Symbology = "qr"
	PDF417 Symbology = "pdf417"
)

// Verification is the code stamped in the footer of every page so a printed
// copy can be checked against the issuing system.
type Verification struct {
	Code      string
	Symbology Symbology
}

// Options configures a new Surface.
type Options struct {
	Geometry layout.Geometry

	Title   string
	Author  string
	Subject string
	// Created is written as the creation and modification date. Output is
	// byte-identical for equal input when it is set.
	Created time.Time
	// Compress deflates page streams.
	Compress bool

	// Letterhead is drawn under the content of every page when the header
	// asks for BackgroundKey.
	Letterhead   *Asset
	Verification *Verification
}

// Surface draws on an fpdf document. It is not safe for concurrent use.
type Surface struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	images    map[string]string // layout key to fpdf image name
	templates map[string]int    // layout key to imported page template
	importer  *gofpdi.Importer

	font layout.Font
	// stale is set after SetPage: the revisited page stream has not
	// selected the current font yet.
	stale bool
}

// New returns an empty Surface with the assets in opts registered. A
// letterhead that cannot be decoded is reported as an *AssetLoadError and
// the surface is still usable without it.
func New(opts Options) (*Surface, error) {
	g := opts.Geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Left, g.Top, g.Right)
	pdf.SetAutoPageBreak(false, g.Bottom)
	pdf.SetCellMargin(0)
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("documentos", true)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	if opts.Subject != "" {
		pdf.SetSubject(opts.Subject, true)
	}
	if !opts.Created.IsZero() {
		pdf.SetCreationDate(opts.Created)
		pdf.SetModificationDate(opts.Created)
	}

	s := &Surface{
		pdf:       pdf,
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		images:    map[string]string{},
		templates: map[string]int{},
	}

	if v := opts.Verification; v != nil && v.Code != "" {
		if err := s.registerCode(*v); err != nil {
			return nil, err
		}
	}
	var assetErr error
	if opts.Letterhead != nil {
		assetErr = s.register(BackgroundKey, opts.Letterhead)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("pdfsurface: %w", pdf.Error())
	}
	return s, assetErr
}

func (s *Surface) registerCode(v Verification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdfsurface: verification code %q: %v", v.Code, r)
		}
	}()
	var key string
	switch v.Symbology {
	case PDF417:
		key = barcode.RegisterPdf417(s.pdf, v.Code, 6, 4)
	case QR, "":
		key = barcode.RegisterQR(s.pdf, v.Code, qr.M, qr.Unicode)
	default:
		return fmt.Errorf("pdfsurface: unknown symbology %q", v.Symbology)
	}
	if s.pdf.Err() {
		return fmt.Errorf("pdfsurface: verification code %q: %w", v.Code, s.pdf.Error())
	}
	s.images[VerificationKey] = key
	return nil
}

// register makes a decoded asset available under key. PDF assets become page
// templates; raster assets become images.
func (s *Surface) register(key string, a *Asset) (err error) {
	if a.Type == TypePDF {
		// gofpdi panics on malformed input
		defer func() {
			if r := recover(); r != nil {
				err = &AssetLoadError{Source: a.Source, Err: fmt.Errorf("import: %v", r)}
			}
		}()
		if s.importer == nil {
			s.importer = gofpdi.NewImporter()
		}
		var rs io.ReadSeeker = bytes.NewReader(a.Data)
		s.templates[key] = s.importer.ImportPageFromStream(s.pdf, &rs, 1, "/MediaBox")
		return nil
	}

	name := key + "." + string(a.Type)
	opts := fpdf.ImageOptions{ImageType: string(a.Type), ReadDpi: false}
	info := s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(a.Data))
	if s.pdf.Err() || info == nil {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return &AssetLoadError{Source: a.Source, Err: err}
	}
	s.images[key] = name
	return nil
}

// AddPage implements layout.Surface.
func (s *Surface) AddPage() {
	// fpdf carries the current font over to the new page
	s.pdf.AddPage()
	s.stale = false
}

// SetPage implements layout.Surface.
func (s *Surface) SetPage(n int) {
	s.pdf.SetPage(n)
	s.stale = true
}

// PageCount implements layout.Surface.
func (s *Surface) PageCount() int {
	return s.pdf.PageCount()
}

// SetFont implements layout.Surface.
func (s *Surface) SetFont(f layout.Font) {
	if s.stale {
		// fpdf skips a font that is already current; force a selection in
		// the revisited page stream.
		s.pdf.SetFont(f.Family, f.Style, f.Size+1)
		s.stale = false
	}
	s.font = f
	s.pdf.SetFont(f.Family, f.Style, f.Size)
}

// StringWidth implements layout.Surface.
func (s *Surface) StringWidth(str string) float64 {
	return s.pdf.GetStringWidth(s.tr(str))
}

// Text implements layout.Surface.
func (s *Surface) Text(x, y, w, h float64, str string, align layout.Align) {
	if strings.TrimSpace(str) == "" {
		return
	}
	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(w, h, s.tr(str), "", 0, string(align)+"M", false, 0, "")
}

// Rect implements layout.Surface.
func (s *Surface) Rect(x, y, w, h float64, fill *layout.Color, border bool) {
	style := ""
	if fill != nil {
		s.pdf.SetFillColor(fill.R, fill.G, fill.B)
		style = "F"
	}
	if border {
		style += "D"
	}
	if style == "" {
		return
	}
	s.pdf.Rect(x, y, w, h, style)
}

// Line implements layout.Surface.
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

// Image implements layout.Surface.
func (s *Surface) Image(key string, x, y, w, h float64) bool {
	if tpl, ok := s.templates[key]; ok {
		s.importer.UseImportedTemplate(s.pdf, tpl, x, y, w, h)
		return true
	}
	name, ok := s.images[key]
	if !ok {
		return false
	}
	if key == VerificationKey {
		barcode.Barcode(s.pdf, name, x, y, w, h, false)
		return true
	}
	s.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
	return true
}

// Output implements layout.Surface. It fails with the first error recorded
// by fpdf while drawing.
func (s *Surface) Output(w io.Writer) error {
	if s.pdf.Err() {
		return fmt.Errorf("pdfsurface: %w", s.pdf.Error())
	}
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfsurface: output: %w", err)
	}
	return nil
}
