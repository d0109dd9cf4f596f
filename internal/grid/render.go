package grid

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
)

// Golden ratio constant used for golden-ratio division placement.
const phi = 1.618033988749895

// FixedGrid overlays a grid of fixed-size cells onto img and returns the
// composited copy. The input image is never modified.
//
// The grid origin is off, normalized into [0, cell) per axis, so any offset
// is equivalent to its wrap-around within one cell. A line landing exactly
// on the far edge is clamped to the last pixel column/row.
func FixedGrid(img image.Image, cellWidth, cellHeight int, off Offset, style LineStyle) (image.Image, error) {
	if err := checkFormat(img); err != nil {
		return nil, err
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell size must be positive, got %dx%d", ErrInvalidParameter, cellWidth, cellHeight)
	}
	if err := checkStyle(style); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	xs := fixedPositions(bounds.Dx(), cellWidth, off.DX)
	ys := fixedPositions(bounds.Dy(), cellHeight, off.DY)
	return composite(img, xs, ys, style), nil
}

// AdaptiveGrid overlays a grid with a fixed number of cells. Cell sizes are
// derived by floating-point division, so line positions land on the nearest
// pixel to each fractional boundary. Only the numCellsX-1 (resp. numCellsY-1)
// interior boundaries are drawn; the image edges are not lines.
func AdaptiveGrid(img image.Image, numCellsX, numCellsY int, off Offset, style LineStyle) (image.Image, error) {
	if err := checkFormat(img); err != nil {
		return nil, err
	}
	if numCellsX <= 0 || numCellsY <= 0 {
		return nil, fmt.Errorf("%w: cell count must be positive, got %dx%d", ErrInvalidParameter, numCellsX, numCellsY)
	}
	if err := checkStyle(style); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	xs := adaptivePositions(bounds.Dx(), numCellsX, off.DX)
	ys := adaptivePositions(bounds.Dy(), numCellsY, off.DY)
	return composite(img, xs, ys, style), nil
}

// NamedGrid dispatches on the grid spec variant and renders the matching
// geometry. CenterLines ignores the offset; all other kinds honor it.
func NamedGrid(img image.Image, spec Spec, off Offset, style LineStyle) (image.Image, error) {
	switch s := spec.(type) {
	case FixedSize:
		return FixedGrid(img, s.CellWidth, s.CellHeight, off, style)

	case FixedCount:
		return AdaptiveGrid(img, s.Columns, s.Rows, off, style)

	case GoldenRatio:
		if err := checkFormat(img); err != nil {
			return nil, err
		}
		if s.Divisions <= 0 {
			return nil, fmt.Errorf("%w: divisions must be positive, got %d", ErrInvalidParameter, s.Divisions)
		}
		if err := checkStyle(style); err != nil {
			return nil, err
		}
		bounds := img.Bounds()
		xs := goldenPositions(bounds.Dx(), s.Divisions, off.DX)
		ys := goldenPositions(bounds.Dy(), s.Divisions, off.DY)
		return composite(img, xs, ys, style), nil

	case RuleOfThirds:
		return AdaptiveGrid(img, 3, 3, off, style)

	case CenterLines:
		if err := checkFormat(img); err != nil {
			return nil, err
		}
		if err := checkStyle(style); err != nil {
			return nil, err
		}
		bounds := img.Bounds()
		return composite(img, []int{bounds.Dx() / 2}, []int{bounds.Dy() / 2}, style), nil

	case nil:
		return nil, fmt.Errorf("%w: nil grid spec", ErrInvalidParameter)

	default:
		return nil, fmt.Errorf("%w: unknown grid kind %q", ErrInvalidParameter, spec.kind())
	}
}

// DrawGuideLines composites each guide onto img in list order and returns
// the result. A guide whose position falls outside the canvas is skipped
// silently. Because each guide blends against the cumulative buffer, later
// guides cover earlier ones at intersections when opacity is below 1.
func DrawGuideLines(img image.Image, guides []GuideLine) (image.Image, error) {
	if err := checkFormat(img); err != nil {
		return nil, err
	}
	for _, g := range guides {
		if g.Orientation != Horizontal && g.Orientation != Vertical {
			return nil, fmt.Errorf("%w: unknown orientation %q", ErrInvalidParameter, g.Orientation)
		}
		if err := checkStyle(g.Style); err != nil {
			return nil, err
		}
	}

	out := imaging.Clone(img)
	for _, g := range guides {
		bounds := out.Bounds()
		overlay := imaging.Clone(out)
		if g.Orientation == Vertical {
			if g.Position < 0 || g.Position >= bounds.Dx() {
				continue
			}
			drawVertical(overlay, g.Position, g.Style)
		} else {
			if g.Position < 0 || g.Position >= bounds.Dy() {
				continue
			}
			drawHorizontal(overlay, g.Position, g.Style)
		}
		out = imaging.Clone(blendOverlay(out, overlay, g.Style.Opacity))
	}
	return out, nil
}

// composite draws the vertical lines xs and horizontal lines ys onto an
// opaque overlay copy of img, then alpha-blends overlay against base. Pixels
// the lines never touch are identical in both copies, so the blend leaves
// them unchanged.
func composite(img image.Image, xs, ys []int, style LineStyle) image.Image {
	base := imaging.Clone(img)
	overlay := imaging.Clone(img)
	for _, x := range xs {
		drawVertical(overlay, x, style)
	}
	for _, y := range ys {
		drawHorizontal(overlay, y, style)
	}
	return blendOverlay(base, overlay, style.Opacity)
}

// blendOverlay applies out = overlay*opacity + base*(1-opacity). The
// boundary opacities short-circuit so that 0 returns the base pixels
// exactly and 1 returns the overlay pixels exactly.
func blendOverlay(base, overlay *image.NRGBA, opacity float64) image.Image {
	switch {
	case opacity <= 0:
		return base
	case opacity >= 1:
		return overlay
	default:
		return blend.Opacity(base, overlay, opacity)
	}
}

// drawVertical paints a vertical line at x across the full height of the
// overlay, honoring thickness and dashing. Thickness is centered on x and
// clipped to the canvas; a span entirely outside the canvas draws nothing.
func drawVertical(overlay *image.NRGBA, x int, style LineStyle) {
	bounds := overlay.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x0 := x - (style.Thickness-1)/2
	x1 := x0 + style.Thickness
	if x1 <= 0 || x0 >= w {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, w)

	for _, run := range dashRuns(h, style) {
		for y := run.start; y < run.end; y++ {
			for cx := x0; cx < x1; cx++ {
				overlay.SetNRGBA(cx, y, style.Color)
			}
		}
	}
}

// drawHorizontal is the horizontal counterpart of drawVertical.
func drawHorizontal(overlay *image.NRGBA, y int, style LineStyle) {
	bounds := overlay.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	y0 := y - (style.Thickness-1)/2
	y1 := y0 + style.Thickness
	if y1 <= 0 || y0 >= h {
		return
	}
	y0 = max(y0, 0)
	y1 = min(y1, h)

	for _, run := range dashRuns(w, style) {
		for x := run.start; x < run.end; x++ {
			for cy := y0; cy < y1; cy++ {
				overlay.SetNRGBA(x, cy, style.Color)
			}
		}
	}
}

type span struct {
	start, end int
}

// dashRuns returns the "on" runs of a line of the given length. A solid
// line is a single run covering the whole length.
func dashRuns(length int, style LineStyle) []span {
	if !style.Dashed {
		return []span{{0, length}}
	}
	step := style.Dash.On + style.Dash.Off
	runs := make([]span, 0, length/step+1)
	for p := 0; p < length; p += step {
		runs = append(runs, span{p, min(p+style.Dash.On, length)})
	}
	return runs
}

// fixedPositions generates line positions every cell pixels starting from
// the wrapped offset. A position landing exactly on size is clamped to the
// last pixel so the far edge line stays visible.
func fixedPositions(size, cell, offset int) []int {
	positions := make([]int, 0, size/cell+1)
	for p := wrap(offset, cell); p <= size; p += cell {
		if p == size {
			positions = append(positions, size-1)
			break
		}
		positions = append(positions, p)
	}
	return positions
}

// adaptivePositions places the n-1 interior cell boundaries at the nearest
// pixel to i*size/n, shifted by offset with wrap-around.
func adaptivePositions(size, n, offset int) []int {
	if size <= 0 {
		return nil
	}
	positions := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		p := int(math.Round(float64(i) * float64(size) / float64(n)))
		positions = append(positions, wrap(p+offset, size))
	}
	return positions
}

// goldenPositions accumulates size/phi^i for i = 1..divisions, starting
// from the offset. Positions outside the canvas are dropped.
func goldenPositions(size, divisions, offset int) []int {
	positions := make([]int, 0, divisions)
	pos := float64(offset)
	for i := 1; i <= divisions; i++ {
		pos += float64(size) / math.Pow(phi, float64(i))
		p := int(pos)
		if p >= 0 && p < size {
			positions = append(positions, p)
		}
	}
	return positions
}

// wrap normalizes v into [0, n) with floored modulo, so negative values
// wrap instead of clamping.
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func checkStyle(style LineStyle) error {
	if style.Thickness < 1 {
		return fmt.Errorf("%w: thickness must be at least 1, got %d", ErrInvalidParameter, style.Thickness)
	}
	if style.Opacity < 0 || style.Opacity > 1 {
		return fmt.Errorf("%w: opacity %g outside [0,1]", ErrInvalidParameter, style.Opacity)
	}
	if style.Dashed {
		if style.Dash.On <= 0 {
			return fmt.Errorf("%w: dash on-run must be positive, got %d", ErrInvalidParameter, style.Dash.On)
		}
		if style.Dash.Off < 0 {
			return fmt.Errorf("%w: dash off-run must not be negative, got %d", ErrInvalidParameter, style.Dash.Off)
		}
	}
	return nil
}

// checkFormat rejects images whose color model the blend cannot handle.
// Grayscale, alpha-only, and CMYK images do not have the 3- or 4-channel
// RGB layout the compositing assumes.
func checkFormat(img image.Image) error {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16, *image.CMYK:
		return fmt.Errorf("%w: cannot blend lines onto %T", ErrUnsupportedFormat, img)
	}
	return nil
}
