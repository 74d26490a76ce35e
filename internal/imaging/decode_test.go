package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img, err := Decode(bytes.NewReader(encodePNG(t, src)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := img.(*image.RGBA); !ok {
		t.Fatalf("expected normalized *image.RGBA, got %T", img)
	}
	if got := img.Bounds(); got != src.Bounds() {
		t.Fatalf("unexpected bounds: %v", got)
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := img.(*image.RGBA); !ok {
		t.Fatalf("expected normalized *image.RGBA, got %T", img)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("expected ErrUndecodable, got %v", err)
	}
}

func TestEncodeJPEGRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 6))
	data, err := EncodeJPEG(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reparse jpeg: %v", err)
	}
	if got := decoded.Bounds(); got != src.Bounds() {
		t.Fatalf("unexpected bounds after round trip: %v", got)
	}
}
