package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"grid_fixed",
		"grid_adaptive",
		"grid_golden_ratio",
		"grid_rule_of_thirds",
		"grid_center_lines",
		"guide_lines",
		"sample_image",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok || schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want object", schemaType)
			}
			if _, ok := tool.InputSchema["properties"]; !ok {
				t.Error("InputSchema missing properties")
			}
		})
	}
}

func TestGridToolSchemas_IncludeStyleProperties(t *testing.T) {
	tools := GetToolDefinitions()

	gridTools := map[string]bool{
		"grid_fixed":          true,
		"grid_adaptive":       true,
		"grid_golden_ratio":   true,
		"grid_rule_of_thirds": true,
		"grid_center_lines":   true,
	}

	for _, tool := range tools {
		if !gridTools[tool.Name] {
			continue
		}
		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Fatalf("%s: properties has unexpected type", tool.Name)
		}
		for _, key := range []string{"path", "color", "thickness", "opacity", "dashed", "offset_x", "offset_y"} {
			if _, ok := props[key]; !ok {
				t.Errorf("%s: missing property %s", tool.Name, key)
			}
		}
	}
}
