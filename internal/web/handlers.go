package web

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/ironsheep/grid-tools-mcp/internal/grid"
	"github.com/ironsheep/grid-tools-mcp/internal/imageio"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sampleHandler returns a generated test image as PNG.
func sampleHandler(c *gin.Context) {
	width := intQuery(c, "width", 800)
	height := intQuery(c, "height", 600)

	img, err := grid.NewSampleImage(width, height)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, img)
}

// gridHandler composites a grid onto an uploaded image (multipart field
// "image") or one fetched from the "image_url" form value, and returns the
// result as PNG. The "type" form value selects the grid kind.
func gridHandler(c *gin.Context) {
	img, err := sourceImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	style, off, err := styleFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var out image.Image
	switch kind := c.DefaultPostForm("type", "fixed"); kind {
	case "fixed":
		out, err = grid.FixedGrid(img,
			intForm(c, "cell_width", 50),
			intForm(c, "cell_height", 50),
			off, style)
	case "adaptive":
		out, err = grid.AdaptiveGrid(img,
			intForm(c, "columns", 10),
			intForm(c, "rows", 10),
			off, style)
	case "golden":
		out, err = grid.NamedGrid(img, grid.GoldenRatio{Divisions: intForm(c, "divisions", 2)}, off, style)
	case "thirds":
		out, err = grid.NamedGrid(img, grid.RuleOfThirds{}, off, style)
	case "center":
		out, err = grid.NamedGrid(img, grid.CenterLines{}, off, style)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown grid type: " + kind})
		return
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	writePNG(c, out)
}

// guideRequest is the JSON body of POST /api/guides. The image comes in as
// a URL or a base64 payload; guide positions may be absolute pixels or a
// percentage of the spanned dimension.
type guideRequest struct {
	ImageURL    string      `json:"image_url"`
	ImageBase64 string      `json:"image_base64"`
	Guides      []guideSpec `json:"guides"`
}

type guideSpec struct {
	Orientation string   `json:"orientation"`
	Position    int      `json:"position"`
	Percent     *float64 `json:"percent,omitempty"`
	Color       string   `json:"color"`
	Thickness   int      `json:"thickness"`
	Opacity     *float64 `json:"opacity"`
	Dashed      bool     `json:"dashed"`
	DashLength  int      `json:"dash_length"`
	DashGap     int      `json:"dash_gap"`
}

func guidesHandler(c *gin.Context) {
	var req guideRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	var img image.Image
	var err error
	switch {
	case req.ImageBase64 != "":
		img, err = imageio.DecodeBase64(req.ImageBase64)
	case req.ImageURL != "":
		img, err = imageio.Download(req.ImageURL)
	default:
		err = errors.New("provide image_url or image_base64")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bounds := img.Bounds()
	guides := make([]grid.GuideLine, 0, len(req.Guides))
	for _, g := range req.Guides {
		style := grid.DefaultStyle()
		if g.Color != "" {
			col, perr := grid.ParseHexColor(g.Color)
			if perr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
				return
			}
			style.Color = col
		}
		if g.Thickness != 0 {
			style.Thickness = g.Thickness
		}
		if g.Opacity != nil {
			style.Opacity = *g.Opacity
		}
		style.Dashed = g.Dashed
		if g.DashLength != 0 {
			style.Dash.On = g.DashLength
		}
		if g.DashGap != 0 {
			style.Dash.Off = g.DashGap
		}

		pos := g.Position
		if g.Percent != nil {
			// Slider semantics: percent of the dimension the line moves
			// along, not the one it spans.
			span := bounds.Dy()
			if grid.Orientation(g.Orientation) == grid.Vertical {
				span = bounds.Dx()
			}
			pos = int(math.Round(*g.Percent / 100 * float64(span)))
		}

		guides = append(guides, grid.GuideLine{
			Orientation: grid.Orientation(g.Orientation),
			Position:    pos,
			Style:       style,
		})
	}

	out, err := grid.DrawGuideLines(img, guides)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	writePNG(c, out)
}

// sourceImage resolves the input image for a multipart request.
func sourceImage(c *gin.Context) (image.Image, error) {
	if f, err := c.FormFile("image"); err == nil {
		r, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return imaging.Decode(r)
	}
	if url := c.PostForm("image_url"); url != "" {
		return imageio.Download(url)
	}
	return nil, errors.New("provide an image file or image_url")
}

// styleFromForm reads the shared style and offset form values, falling back
// to the renderer defaults.
func styleFromForm(c *gin.Context) (grid.LineStyle, grid.Offset, error) {
	style := grid.DefaultStyle()
	if v := c.PostForm("color"); v != "" {
		col, err := grid.ParseHexColor(v)
		if err != nil {
			return style, grid.Offset{}, err
		}
		style.Color = col
	}
	style.Thickness = intForm(c, "thickness", style.Thickness)
	if v := c.PostForm("opacity"); v != "" {
		o, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return style, grid.Offset{}, errors.New("bad opacity value: " + v)
		}
		style.Opacity = o
	}
	style.Dashed = c.PostForm("dashed") == "true"
	style.Dash.On = intForm(c, "dash_length", style.Dash.On)
	style.Dash.Off = intForm(c, "dash_gap", style.Dash.Off)

	off := grid.Offset{
		DX: intForm(c, "offset_x", 0),
		DY: intForm(c, "offset_y", 0),
	}
	return style, off, nil
}

func statusFor(err error) int {
	if errors.Is(err, grid.ErrInvalidParameter) || errors.Is(err, grid.ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func intQuery(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func intForm(c *gin.Context, name string, def int) int {
	if v := c.PostForm(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func writePNG(c *gin.Context, img image.Image) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
