package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/rickar/cal/v2"

	"documentos/layout"
	"documentos/pdfsurface"
)

// Generator renders documents from a Source. It holds no per-render state
// and is safe for concurrent use.
type Generator struct {
	Source   Source
	Settings Settings
	Log      *ll.Logger
	// Client fetches letterheads given as URLs; nil uses http.DefaultClient.
	Client *http.Client
	// Now stamps the document creation date. When nil the issue date of the
	// document is used, so renders of an unchanged model are byte-identical.
	Now func() time.Time

	calendar *cal.BusinessCalendar
	logOnce  sync.Once
	fallback *ll.Logger
}

// NewGenerator returns a Generator with the business calendar built from
// the settings and a text logger on stderr.
func NewGenerator(src Source, s Settings) (*Generator, error) {
	c, err := NewCalendar(s.Holidays)
	if err != nil {
		return nil, err
	}
	return &Generator{Source: src, Settings: s, Log: newLogger(), calendar: c}, nil
}

// logOutput receives the text of loggers created by the package.
var logOutput io.Writer = os.Stderr

func newLogger() *ll.Logger {
	log := ll.New("documentos").Handler(lh.NewTextHandler(logOutput))
	log.Enable()
	return log
}

// Generate renders document id to PDF bytes.
func (g *Generator) Generate(ctx context.Context, id string) ([]byte, error) {
	rid := uuid.NewString()
	log := g.logger()

	m, err := g.Source.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	m, warnings, err := Normalize(m)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warnf("render %s: %s %s: %v", rid, m.Kind, m.ID, w)
	}

	blocks, err := Build(m, g.buildOptions())
	if err != nil {
		return nil, err
	}

	st := g.Settings
	header := &layout.Letterhead{
		Geometry:    st.Geometry,
		Lines:       st.Institution,
		Reference:   "Ref. " + m.Reference,
		PageFormat:  st.PageFormat,
		Font:        st.Style.Body.WithSize(st.Style.Body.Size - 2),
		Gap:         st.Style.LineHeight(st.Style.Body),
		FooterLines: st.Footer,
		FooterFont:  st.Style.Body.WithSize(st.Style.Body.Size - 3),
	}

	opts := pdfsurface.Options{
		Geometry: st.Geometry,
		Title:    m.Title,
		Author:   strings.Join(st.Institution, " - "),
		Subject:  m.Reference,
		Created:  g.created(m),
		Compress: st.Compress,
	}
	if st.Letterhead != "" {
		if asset := g.letterhead(ctx, rid); asset != nil {
			opts.Letterhead = asset
			header.Background = pdfsurface.BackgroundKey
		}
	}
	if st.VerifyURL != "" {
		opts.Verification = &pdfsurface.Verification{
			Code:      strings.ReplaceAll(st.VerifyURL, "{id}", m.ID),
			Symbology: st.Symbology,
		}
		header.Verification = pdfsurface.VerificationKey
	}

	a := &layout.Assembler{
		Blocks:   blocks,
		Geometry: st.Geometry,
		Style:    st.Style,
		Header:   header,
		Log:      log,
		NewSurface: func(pass layout.Pass) (layout.Surface, error) {
			s, err := pdfsurface.New(opts)
			var assetErr *pdfsurface.AssetLoadError
			if errors.As(err, &assetErr) {
				if pass == layout.Discovery {
					log.Warnf("render %s: %v", rid, err)
				}
				return s, nil
			}
			return s, err
		},
	}

	var buf bytes.Buffer
	pages, err := a.Assemble(ctx, &buf)
	if err != nil {
		log.Errorf("render %s: %s %s: %v", rid, m.Kind, m.ID, err)
		return nil, err
	}
	log.Infof("render %s: %s %s, %d pages, %d bytes", rid, m.Kind, m.ID, pages, buf.Len())
	return buf.Bytes(), nil
}

func (g *Generator) buildOptions() BuildOptions {
	c := g.calendar
	if c == nil {
		c, _ = NewCalendar(nil)
	}
	return BuildOptions{
		City:         g.Settings.City,
		Table:        g.Settings.Table,
		Unit:         g.Settings.Unit,
		Calendar:     c,
		DeadlineDays: g.Settings.DeadlineDays,
	}
}

// letterhead loads the configured background. Failures are logged and the
// document is rendered without it.
func (g *Generator) letterhead(ctx context.Context, rid string) *pdfsurface.Asset {
	timeout := g.Settings.LetterheadTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	asset, err := pdfsurface.LoadAsset(ctx, g.Settings.Letterhead, g.Client)
	if err != nil {
		g.logger().Warnf("render %s: continuing without letterhead: %v", rid, err)
		return nil
	}
	return asset
}

func (g *Generator) logger() *ll.Logger {
	if g.Log != nil {
		return g.Log
	}
	g.logOnce.Do(func() { g.fallback = newLogger() })
	return g.fallback
}

// undated stamps documents without an issue date.
var undated = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

func (g *Generator) created(m Model) time.Time {
	switch {
	case g.Now != nil:
		return g.Now()
	case !m.Issued.IsZero():
		return m.Issued
	}
	return undated
}

// Alert returns the message shown to a person when generation fails.
func Alert(err error) string {
	var (
		missing      *MissingDataError
		overflow     *layout.LayoutOverflowError
		inconsistent *layout.PassInconsistencyError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return fmt.Sprintf("No se puede generar el documento: falta el dato obligatorio %q.", missing.Field)
	case errors.Is(err, ErrNotFound):
		return "El documento solicitado no existe."
	case errors.Is(err, ErrUnknownKind):
		return "El tipo de documento no está soportado."
	case errors.As(err, &overflow):
		return fmt.Sprintf("El documento no se puede paginar: un elemento (%s) no cabe en una página.", overflow.Unit)
	case errors.As(err, &inconsistent):
		return "Error interno de paginación: el número de páginas no es estable."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "La generación del documento fue interrumpida."
	}
	return "No se pudo generar el documento."
}
