// Package ocr turns receipt images into plain text.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

var ErrNoTextExtracted = errors.New("no text extracted from image")

// TextExtractor reads whatever text it can find in an image.
type TextExtractor interface {
	ExtractText(ctx context.Context, img []byte) (string, error)
}

// ValidateImage checks that img is a decodable PNG or JPEG and reports
// its detected format.
func ValidateImage(img []byte) (string, error) {
	_, format, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	return format, nil
}
