package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

func createTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{100, 150, 200, 255})
		}
	}

	tmpFile, err := os.CreateTemp("", "loader-test-*.png")
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

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := createTestPNG(t, 40, 30)
	defer os.Remove(path)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load hits the cache even after the file is gone.
	os.Remove(path)
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should re-read the missing file and fail")
	}
}

func TestImageCache_LoadMissingFile(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	path := createTestPNG(t, 10, 10)
	defer os.Remove(path)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if _, err := cache.Load(path); err != nil {
		t.Errorf("Load after Clear failed: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := createTestPNG(t, 64, 32)
	defer os.Remove(path)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 64 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("file size should be positive")
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	path := createTestPNG(t, 25, 75)
	defer os.Remove(path)

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 25 || dims.Height != 75 {
		t.Errorf("dimensions: got %dx%d, want 25x75", dims.Width, dims.Height)
	}
}
