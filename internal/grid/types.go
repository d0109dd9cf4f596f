package grid

import (
	"errors"
	"image/color"
)

// Errors returned by the renderer. Callers can match them with errors.Is
// to distinguish bad configuration from images the renderer cannot blend.
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Offset shifts the grid origin before line placement. Offsets larger than
// the relevant span wrap rather than clamp, so shifting a fixed grid by a
// full cell width is a no-op.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// DashPattern describes the on/off run lengths of a dashed line, in pixels
// along the line's long axis.
type DashPattern struct {
	On  int `json:"on"`
	Off int `json:"off"`
}

// LineStyle controls how a line is composited onto the image.
type LineStyle struct {
	// Color is the line color. Its alpha byte is carried into the output
	// verbatim; Opacity alone controls blending against the base image.
	Color color.NRGBA

	// Thickness is the line width in pixels, centered on the line position.
	// Must be at least 1.
	Thickness int

	// Opacity is the blend weight in [0,1]. 0 leaves the image untouched,
	// 1 replaces line pixels with Color outright.
	Opacity float64

	// Dashed switches the line from solid to dashed using Dash.
	Dashed bool
	Dash   DashPattern
}

// DefaultStyle returns the style the original tool ships with: a solid
// 1px red line at 70% opacity, with a 10/10 pattern if dashing is enabled.
func DefaultStyle() LineStyle {
	return LineStyle{
		Color:     color.NRGBA{R: 255, A: 255},
		Thickness: 1,
		Opacity:   0.7,
		Dash:      DashPattern{On: 10, Off: 10},
	}
}

// Orientation of a guide line.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// GuideLine is a single full-span line independent of any grid. A
// horizontal guide spans the image width at Position (a y coordinate);
// a vertical guide spans the height at Position (an x coordinate).
type GuideLine struct {
	Orientation Orientation
	Position    int
	Style       LineStyle
}

// Spec selects a grid geometry. Exactly one of the concrete types below is
// passed to NamedGrid, which dispatches on the variant.
type Spec interface {
	kind() string
}

// FixedSize draws cells of a fixed pixel size.
type FixedSize struct {
	CellWidth  int
	CellHeight int
}

// FixedCount divides the image into a fixed number of cells.
type FixedCount struct {
	Columns int
	Rows    int
}

// GoldenRatio places successive division lines at golden-ratio positions.
type GoldenRatio struct {
	Divisions int
}

// RuleOfThirds is the classic 3x3 composition grid.
type RuleOfThirds struct{}

// CenterLines draws one vertical and one horizontal line through the
// image center.
type CenterLines struct{}

func (FixedSize) kind() string    { return "fixed" }
func (FixedCount) kind() string   { return "adaptive" }
func (GoldenRatio) kind() string  { return "golden" }
func (RuleOfThirds) kind() string { return "thirds" }
func (CenterLines) kind() string  { return "center" }
