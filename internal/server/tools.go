package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// styleProperties returns the schema fragment shared by every tool that
// draws lines: color, thickness, opacity, dashing, and grid offset.
func styleProperties() map[string]interface{} {
	return map[string]interface{}{
		"color": map[string]interface{}{
			"type":        "string",
			"description": "Line color as hex, '#RRGGBB' or '#RRGGBBAA'. Default #FF0000",
		},
		"thickness": map[string]interface{}{
			"type":        "integer",
			"description": "Line thickness in pixels. Default 1",
		},
		"opacity": map[string]interface{}{
			"type":        "number",
			"description": "Line opacity from 0.0 to 1.0. Default 0.7",
		},
		"dashed": map[string]interface{}{
			"type":        "boolean",
			"description": "Draw dashed lines instead of solid. Default false",
		},
		"dash_length": map[string]interface{}{
			"type":        "integer",
			"description": "Length of each dash in pixels. Default 10",
		},
		"dash_gap": map[string]interface{}{
			"type":        "integer",
			"description": "Gap between dashes in pixels. Default 10",
		},
		"offset_x": map[string]interface{}{
			"type":        "integer",
			"description": "Horizontal grid offset in pixels. Wraps; default 0",
		},
		"offset_y": map[string]interface{}{
			"type":        "integer",
			"description": "Vertical grid offset in pixels. Wraps; default 0",
		},
	}
}

// gridToolSchema builds an input schema from the common path + style
// properties plus the tool-specific extras.
func gridToolSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
	}
	for k, v := range styleProperties() {
		props[k] = v
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Grid Overlays
		{
			Name:        "grid_fixed",
			Description: "Overlay a grid of fixed-size cells onto an image and return the result as base64-encoded PNG.",
			InputSchema: gridToolSchema(map[string]interface{}{
				"cell_width": map[string]interface{}{
					"type":        "integer",
					"description": "Width of each grid cell in pixels",
				},
				"cell_height": map[string]interface{}{
					"type":        "integer",
					"description": "Height of each grid cell in pixels",
				},
			}, "cell_width", "cell_height"),
		},
		{
			Name:        "grid_adaptive",
			Description: "Overlay a grid with a fixed number of cells onto an image; cell sizes adapt to the image dimensions.",
			InputSchema: gridToolSchema(map[string]interface{}{
				"columns": map[string]interface{}{
					"type":        "integer",
					"description": "Number of cells across the width",
				},
				"rows": map[string]interface{}{
					"type":        "integer",
					"description": "Number of cells down the height",
				},
			}, "columns", "rows"),
		},
		{
			Name:        "grid_golden_ratio",
			Description: "Overlay golden-ratio division lines onto an image.",
			InputSchema: gridToolSchema(map[string]interface{}{
				"divisions": map[string]interface{}{
					"type":        "integer",
					"description": "Number of golden ratio divisions. Default 2",
				},
			}),
		},
		{
			Name:        "grid_rule_of_thirds",
			Description: "Overlay a rule-of-thirds composition grid onto an image.",
			InputSchema: gridToolSchema(nil),
		},
		{
			Name:        "grid_center_lines",
			Description: "Overlay horizontal and vertical center lines onto an image. Ignores offsets.",
			InputSchema: gridToolSchema(nil),
		},

		// Guide Lines
		{
			Name:        "guide_lines",
			Description: "Draw individually positioned full-span guide lines onto an image, composited in list order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"guides": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"orientation": map[string]interface{}{
									"type":        "string",
									"enum":        []string{"horizontal", "vertical"},
									"description": "Line orientation",
								},
								"position": map[string]interface{}{
									"type":        "integer",
									"description": "Line position in pixels (y for horizontal, x for vertical)",
								},
								"color":       map[string]interface{}{"type": "string", "description": "Hex color. Default #FF0000"},
								"thickness":   map[string]interface{}{"type": "integer", "description": "Thickness in pixels. Default 1"},
								"opacity":     map[string]interface{}{"type": "number", "description": "Opacity 0.0-1.0. Default 0.7"},
								"dashed":      map[string]interface{}{"type": "boolean", "description": "Dashed line. Default false"},
								"dash_length": map[string]interface{}{"type": "integer", "description": "Dash length. Default 10"},
								"dash_gap":    map[string]interface{}{"type": "integer", "description": "Dash gap. Default 10"},
							},
							"required": []string{"orientation", "position"},
						},
						"description": "Guide lines to draw, in compositing order",
					},
				},
				"required": []string{"path", "guides"},
			},
		},

		// Sample Image
		{
			Name:        "sample_image",
			Description: "Generate a sample test image (gradient plus shapes) for trying out grids without an input file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels. Default 800",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels. Default 600",
					},
				},
			},
		},
	}
}
