package server

import (
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// callTool runs a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	}
	resp := s.handleRequest(req)
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeRenderResult extracts the GridRenderResult from a successful
// tools/call response.
func decodeRenderResult(t *testing.T, resp *MCPResponse) *GridRenderResult {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content in result")
	}
	text, _ := content[0]["text"].(string)

	var render GridRenderResult
	if err := json.Unmarshal([]byte(text), &render); err != nil {
		t.Fatalf("failed to decode render result: %v", err)
	}
	return &render
}

// decodePNGPayload decodes the base64 PNG payload of a render result.
func decodePNGPayload(t *testing.T, render *GridRenderResult) image.Image {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(render.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": imgPath})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
}

func TestHandleToolsCall_GridFixed(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_fixed", map[string]interface{}{
		"path":        imgPath,
		"cell_width":  50,
		"cell_height": 50,
		"color":       "#FFFFFF",
		"opacity":     1.0,
	})
	render := decodeRenderResult(t, resp)

	if render.Width != 100 || render.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", render.Width, render.Height)
	}
	if render.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", render.MimeType)
	}

	out := decodePNGPayload(t, render)
	r, g, b, _ := out.At(50, 25).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 {
		t.Error("expected white grid line at (50,25)")
	}
	r, _, _, _ = out.At(25, 25).RGBA()
	if uint8(r>>8) != 0 {
		t.Error("expected untouched background at (25,25)")
	}
}

func TestHandleToolsCall_GridFixed_InvalidCellWidth(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_fixed", map[string]interface{}{
		"path":        imgPath,
		"cell_width":  0,
		"cell_height": 50,
	})
	if resp.Error == nil {
		t.Fatal("expected error for zero cell width")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_GridAdaptive(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 90, 90, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_adaptive", map[string]interface{}{
		"path":    imgPath,
		"columns": 3,
		"rows":    3,
		"color":   "#FFFFFF",
		"opacity": 1.0,
	})
	render := decodeRenderResult(t, resp)
	out := decodePNGPayload(t, render)

	r, _, _, _ := out.At(30, 10).RGBA()
	if uint8(r>>8) != 255 {
		t.Error("expected boundary line at x=30")
	}
}

func TestHandleToolsCall_GridRuleOfThirds(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 90, 90, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_rule_of_thirds", map[string]interface{}{"path": imgPath})
	render := decodeRenderResult(t, resp)
	if render.Width != 90 || render.Height != 90 {
		t.Errorf("dimensions: got %dx%d, want 90x90", render.Width, render.Height)
	}
}

func TestHandleToolsCall_GridGoldenRatio_DefaultDivisions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 120, 80, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_golden_ratio", map[string]interface{}{"path": imgPath})
	render := decodeRenderResult(t, resp)
	if render.ImageBase64 == "" {
		t.Error("ImageBase64 is empty")
	}
}

func TestHandleToolsCall_GridCenterLines(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 100, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "grid_center_lines", map[string]interface{}{
		"path":    imgPath,
		"color":   "#FFFFFF",
		"opacity": 1.0,
	})
	render := decodeRenderResult(t, resp)
	out := decodePNGPayload(t, render)

	r, _, _, _ := out.At(100, 10).RGBA()
	if uint8(r>>8) != 255 {
		t.Error("expected vertical center line at x=100")
	}
	r, _, _, _ = out.At(10, 50).RGBA()
	if uint8(r>>8) != 255 {
		t.Error("expected horizontal center line at y=50")
	}
}

func TestHandleToolsCall_GuideLines(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "guide_lines", map[string]interface{}{
		"path": imgPath,
		"guides": []map[string]interface{}{
			{"orientation": "horizontal", "position": 40, "color": "#FFFFFF", "opacity": 1.0},
			{"orientation": "vertical", "position": 60, "color": "#FF0000", "opacity": 1.0},
		},
	})
	render := decodeRenderResult(t, resp)
	out := decodePNGPayload(t, render)

	r, g, b, _ := out.At(10, 40).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 {
		t.Error("expected white horizontal guide at (10,40)")
	}
	r, g, _, _ = out.At(60, 10).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 {
		t.Error("expected red vertical guide at (60,10)")
	}
}

func TestHandleToolsCall_GuideLines_BadOrientation(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 50, 50, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	resp := callTool(t, s, "guide_lines", map[string]interface{}{
		"path": imgPath,
		"guides": []map[string]interface{}{
			{"orientation": "diagonal", "position": 10},
		},
	})
	if resp.Error == nil {
		t.Fatal("expected error for bad orientation")
	}
}

func TestHandleToolsCall_SampleImage(t *testing.T) {
	s := New()

	resp := callTool(t, s, "sample_image", map[string]interface{}{
		"width":  160,
		"height": 120,
	})
	render := decodeRenderResult(t, resp)
	if render.Width != 160 || render.Height != 120 {
		t.Errorf("dimensions: got %dx%d, want 160x120", render.Width, render.Height)
	}
}

func TestHandleToolsCall_SampleImage_Defaults(t *testing.T) {
	s := New()

	resp := callTool(t, s, "sample_image", map[string]interface{}{})
	render := decodeRenderResult(t, resp)
	if render.Width != 800 || render.Height != 600 {
		t.Errorf("dimensions: got %dx%d, want 800x600", render.Width, render.Height)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New()

	if _, err := s.executeTool("does_not_exist", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}
