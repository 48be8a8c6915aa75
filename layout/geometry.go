package layout

// PointsPerCM converts centimetres to PDF points.
const PointsPerCM = 72 / 2.54

// CM returns v centimetres in points.
func CM(v float64) float64 {
	return v * PointsPerCM
}

// Letter page dimensions in points (portrait).
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Geometry describes the page size and margins shared by every page of a
// document.
type Geometry struct {
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`
	Top        float64 `yaml:"top"`
	Bottom     float64 `yaml:"bottom"`
	Left       float64 `yaml:"left"`
	Right      float64 `yaml:"right"`
}

// Letter returns a portrait letter page with the standard margins used for
// official documents: 1.5 cm left and right, 2.5 cm top, 2.0 cm bottom.
func Letter() Geometry {
	return Geometry{
		PageWidth:  LetterWidth,
		PageHeight: LetterHeight,
		Top:        CM(2.5),
		Bottom:     CM(2.0),
		Left:       CM(1.5),
		Right:      CM(1.5),
	}
}

// ContentWidth is the horizontal space between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.Left - g.Right
}

// Limit is the lowest y coordinate content may reach.
func (g Geometry) Limit() float64 {
	return g.PageHeight - g.Bottom
}
