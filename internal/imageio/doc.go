// Package imageio handles getting images into and out of the renderer:
// cached file loading, HTTP download, and PNG/base64 encoding. The renderer
// itself performs no I/O; everything here belongs to the boundary layers.
package imageio
