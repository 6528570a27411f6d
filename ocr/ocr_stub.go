//go:build !ocr

// Package ocr recognizes text in a document's embedded raster media
// (scanned pages and figures saved as pictures).
//
// This is the stub implementation used when the "ocr" build tag is not
// set; all operations return ErrOCRNotEnabled. To enable recognition,
// rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// which requires Tesseract to be installed on the system.
package ocr

import (
	"errors"

	"github.com/tsawler/wordpack/media"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub client; every operation fails with ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizePicture returns ErrOCRNotEnabled.
func (c *Client) RecognizePicture(pic media.Picture) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
