package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/grid-tools-mcp/internal/grid"
	"github.com/ironsheep/grid-tools-mcp/internal/imageio"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_fixed", "guide_lines").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Grid Overlays
	case "grid_fixed":
		return s.handleGridFixed(args)
	case "grid_adaptive":
		return s.handleGridAdaptive(args)
	case "grid_golden_ratio":
		return s.handleGridGoldenRatio(args)
	case "grid_rule_of_thirds":
		return s.handleGridRuleOfThirds(args)
	case "grid_center_lines":
		return s.handleGridCenterLines(args)

	// Guide Lines
	case "guide_lines":
		return s.handleGuideLines(args)

	// Sample Image
	case "sample_image":
		return s.handleSampleImage(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.GetDimensions(s.cache, a.Path)
}

// === Grid Overlay Handlers ===

// GridRenderResult contains a composited image encoded as base64 PNG.
type GridRenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// styleArgs holds the line style and offset parameters shared by every
// drawing tool. Zero values fall back to the renderer defaults; opacity is
// a pointer because 0 is a meaningful value.
type styleArgs struct {
	Color      string   `json:"color"`
	Thickness  int      `json:"thickness"`
	Opacity    *float64 `json:"opacity"`
	Dashed     bool     `json:"dashed"`
	DashLength int      `json:"dash_length"`
	DashGap    int      `json:"dash_gap"`
	OffsetX    int      `json:"offset_x"`
	OffsetY    int      `json:"offset_y"`
}

func (a styleArgs) lineStyle() (grid.LineStyle, error) {
	style := grid.DefaultStyle()
	if a.Color != "" {
		c, err := grid.ParseHexColor(a.Color)
		if err != nil {
			return grid.LineStyle{}, err
		}
		style.Color = c
	}
	if a.Thickness != 0 {
		style.Thickness = a.Thickness
	}
	if a.Opacity != nil {
		style.Opacity = *a.Opacity
	}
	style.Dashed = a.Dashed
	if a.DashLength != 0 {
		style.Dash.On = a.DashLength
	}
	if a.DashGap != 0 {
		style.Dash.Off = a.DashGap
	}
	return style, nil
}

func (a styleArgs) offset() grid.Offset {
	return grid.Offset{DX: a.OffsetX, DY: a.OffsetY}
}

func renderResult(img image.Image) (*GridRenderResult, error) {
	encoded, err := imageio.EncodeBase64PNG(img)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &GridRenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type gridFixedArgs struct {
	Path       string `json:"path"`
	CellWidth  int    `json:"cell_width"`
	CellHeight int    `json:"cell_height"`
	styleArgs
}

func (s *Server) handleGridFixed(args json.RawMessage) (interface{}, error) {
	var a gridFixedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	style, err := a.lineStyle()
	if err != nil {
		return nil, err
	}
	out, err := grid.FixedGrid(img, a.CellWidth, a.CellHeight, a.offset(), style)
	if err != nil {
		return nil, err
	}
	return renderResult(out)
}

type gridAdaptiveArgs struct {
	Path    string `json:"path"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	styleArgs
}

func (s *Server) handleGridAdaptive(args json.RawMessage) (interface{}, error) {
	var a gridAdaptiveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	style, err := a.lineStyle()
	if err != nil {
		return nil, err
	}
	out, err := grid.AdaptiveGrid(img, a.Columns, a.Rows, a.offset(), style)
	if err != nil {
		return nil, err
	}
	return renderResult(out)
}

type gridGoldenArgs struct {
	Path      string `json:"path"`
	Divisions int    `json:"divisions"`
	styleArgs
}

func (s *Server) handleGridGoldenRatio(args json.RawMessage) (interface{}, error) {
	var a gridGoldenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Divisions == 0 {
		a.Divisions = 2
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	style, err := a.lineStyle()
	if err != nil {
		return nil, err
	}
	out, err := grid.NamedGrid(img, grid.GoldenRatio{Divisions: a.Divisions}, a.offset(), style)
	if err != nil {
		return nil, err
	}
	return renderResult(out)
}

type gridNamedArgs struct {
	Path string `json:"path"`
	styleArgs
}

func (s *Server) handleGridRuleOfThirds(args json.RawMessage) (interface{}, error) {
	return s.handleNamed(args, grid.RuleOfThirds{})
}

func (s *Server) handleGridCenterLines(args json.RawMessage) (interface{}, error) {
	return s.handleNamed(args, grid.CenterLines{})
}

func (s *Server) handleNamed(args json.RawMessage, spec grid.Spec) (interface{}, error) {
	var a gridNamedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	style, err := a.lineStyle()
	if err != nil {
		return nil, err
	}
	out, err := grid.NamedGrid(img, spec, a.offset(), style)
	if err != nil {
		return nil, err
	}
	return renderResult(out)
}

// === Guide Line Handlers ===

type guideArgs struct {
	Orientation string `json:"orientation"`
	Position    int    `json:"position"`
	styleArgs
}

type guideLinesArgs struct {
	Path   string      `json:"path"`
	Guides []guideArgs `json:"guides"`
}

func (s *Server) handleGuideLines(args json.RawMessage) (interface{}, error) {
	var a guideLinesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	guides := make([]grid.GuideLine, 0, len(a.Guides))
	for _, g := range a.Guides {
		style, err := g.lineStyle()
		if err != nil {
			return nil, err
		}
		guides = append(guides, grid.GuideLine{
			Orientation: grid.Orientation(g.Orientation),
			Position:    g.Position,
			Style:       style,
		})
	}

	out, err := grid.DrawGuideLines(img, guides)
	if err != nil {
		return nil, err
	}
	return renderResult(out)
}

// === Sample Image Handler ===

type sampleImageArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleSampleImage(args json.RawMessage) (interface{}, error) {
	var a sampleImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 800
	}
	if a.Height == 0 {
		a.Height = 600
	}
	img, err := grid.NewSampleImage(a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return renderResult(img)
}
