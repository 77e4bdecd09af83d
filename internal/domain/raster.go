package domain

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"github.com/disintegration/imaging"
)

// ErrInvalidImage marks upload bytes that do not decode as a supported image.
var ErrInvalidImage = errors.New("invalid image format")

const (
	// maxRasterWidth caps the raster sent to the model. Terrain detail
	// survives the downscale and the payload shrinks by an order of magnitude.
	maxRasterWidth = 1000 // px
	jpegQuality    = 85
)

// NormalizeRaster decodes uploaded image bytes and re-encodes them as a
// 3-channel JPEG raster suitable for model submission. Oversized rasters are
// resized preserving aspect ratio.
func NormalizeRaster(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	var normalized image.Image = img
	if img.Bounds().Dx() > maxRasterWidth {
		normalized = imaging.Resize(img, maxRasterWidth, 0, imaging.Lanczos)
	}

	// JPEG encoding yields 3-channel color output regardless of the source
	// color model, so grayscale and alpha-carrying inputs come out RGB.
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, normalized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}
	return buf.Bytes(), nil
}
