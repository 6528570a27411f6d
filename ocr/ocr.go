//go:build ocr

// Package ocr recognizes text in a document's embedded raster media
// (scanned pages and figures saved as pictures).
//
// It wraps the Tesseract engine via gosseract and requires Tesseract to
// be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// This implementation is selected by the "ocr" build tag; the default
// build uses a stub whose operations return ErrOCRNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/wordpack/media"
)

// Client wraps Tesseract for recognition over embedded media.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it when no longer needed.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases the Tesseract client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize performs OCR on raw image data (png, jpeg, tiff, ...).
// The recognized text is returned with surrounding whitespace trimmed.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizePicture performs OCR on an embedded picture part.
func (c *Client) RecognizePicture(pic media.Picture) (string, error) {
	data, err := pic.Part.Bytes()
	if err != nil {
		return "", fmt.Errorf("reading picture part: %w", err)
	}
	return c.Recognize(data)
}

// SetLanguage sets the recognition language(s), "+"-separated for
// multiple (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
