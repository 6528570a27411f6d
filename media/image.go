package media

import (
	"bytes"
	"fmt"
	"image"

	// Codecs registered for image.DecodeConfig. DOCX producers commonly
	// embed png and jpeg, but bmp, tiff, gif and webp all occur.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageInfo describes an embedded raster image without decoding its
// pixel data.
type ImageInfo struct {
	Format string // png, jpeg, gif, bmp, tiff, webp
	Width  int
	Height int
}

// Info probes image data for its format and dimensions.
func Info(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("probing image: %w", err)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Info probes the picture part's content for format and dimensions.
func (p Picture) Info() (ImageInfo, error) {
	data, err := p.Part.Bytes()
	if err != nil {
		return ImageInfo{}, err
	}
	return Info(data)
}
