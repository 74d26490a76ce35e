package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrEmptyInput is returned when the uploaded file contains no bytes.
var ErrEmptyInput = errors.New("empty image input")

// ErrUndecodable is returned when the bytes are not a supported image format.
var ErrUndecodable = errors.New("unsupported or corrupt image")

const jpegQuality = 90

// Decode reads an uploaded image (JPEG, PNG, GIF or WebP) and normalizes it
// to an RGB bitmap. File-format concerns stop here; the analysis core only
// ever sees the decoded image.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return normalizeRGB(img), nil
}

// EncodeJPEG serializes an image as JPEG bytes for provider payloads.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeRGB strips alpha and palette representations so downstream
// encoding always starts from a plain three-channel image.
func normalizeRGB(img image.Image) image.Image {
	if _, ok := img.(*image.RGBA); ok {
		return img
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
