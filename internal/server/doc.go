// Package server implements the MCP (Model Context Protocol) server for the
// grid overlay tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the composition
// grid renderer through the MCP protocol, so MCP-compatible clients can
// overlay grids and guides on images by path.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Grid Overlays:
//   - grid_fixed: Fixed-size cells
//   - grid_adaptive: Fixed cell count
//   - grid_golden_ratio: Golden-ratio divisions
//   - grid_rule_of_thirds: 3x3 composition grid
//   - grid_center_lines: Center cross
//
// Guides and Fixtures:
//   - guide_lines: Individually positioned full-span lines
//   - sample_image: Generated test image
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across tool calls for the lifetime of the
// server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 (or standard JSON-RPC codes for malformed requests), a
// human-readable message, and the Go error string as data.
package server
