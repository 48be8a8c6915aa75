package document

import (
	"time"

	"documentos/layout"
	"documentos/numwords"
	"documentos/pdfsurface"
)

// Settings describes the issuing institution and the look of its documents.
type Settings struct {
	Geometry layout.Geometry   `yaml:"geometry"`
	Style    layout.Style      `yaml:"style"`
	Table    layout.TableStyle `yaml:"table"`
	Unit     numwords.Unit     `yaml:"currency_name"`

	Institution []string `yaml:"institution"`
	City        string   `yaml:"city"`
	Footer      []string `yaml:"footer"`
	PageFormat  string   `yaml:"page_format"`

	// Letterhead is a file path or URL of an image or PDF drawn under every
	// page.
	Letterhead        string        `yaml:"letterhead"`
	LetterheadTimeout time.Duration `yaml:"letterhead_timeout"`

	// VerifyURL is encoded in the footer barcode; {id} is replaced by the
	// document id. Empty disables the barcode.
	VerifyURL string               `yaml:"verify_url"`
	Symbology pdfsurface.Symbology `yaml:"symbology"`

	// Holidays are extra closing days (YYYY-MM-DD) on top of the public
	// holidays.
	Holidays     []string `yaml:"holidays"`
	DeadlineDays int      `yaml:"deadline_days"`
	Compress     bool     `yaml:"compress"`
}

// DefaultSettings returns letter pages with the standard margins, 11pt
// Helvetica, colones and a three day objection period.
func DefaultSettings() Settings {
	return Settings{
		Geometry:          layout.Letter(),
		Style:             layout.DefaultStyle(),
		Table:             layout.DefaultTableStyle(),
		Unit:              numwords.Colones,
		Institution:       []string{"Proveeduría Institucional"},
		City:              "San José",
		PageFormat:        layout.DefaultPageFormat,
		LetterheadTimeout: 5 * time.Second,
		Symbology:         pdfsurface.QR,
		DeadlineDays:      3,
		Compress:          true,
	}
}
