package imageio

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEncodeDecodeBase64PNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	img.SetNRGBA(3, 4, color.NRGBA{255, 0, 0, 255})

	encoded, err := EncodeBase64PNG(img)
	if err != nil {
		t.Fatalf("EncodeBase64PNG failed: %v", err)
	}
	if encoded == "" {
		t.Fatal("encoded payload is empty")
	}

	decoded, err := DecodeBase64(encoded)
	if err != nil {
		t.Fatalf("DecodeBase64 failed: %v", err)
	}
	if decoded.Bounds().Dx() != 12 || decoded.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
	r, _, _, _ := decoded.At(3, 4).RGBA()
	if uint8(r>>8) != 255 {
		t.Error("pixel (3,4) should survive the round trip")
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	if _, err := DecodeBase64("not-base64!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := DecodeBase64("aGVsbG8="); err == nil {
		t.Error("expected error for non-image payload")
	}
}

func TestDownload(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			t.Errorf("failed to serve png: %v", err)
		}
	}))
	defer srv.Close()

	got, err := Download(srv.URL)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Errorf("dimensions: got %dx%d, want 16x16", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Download(srv.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}
