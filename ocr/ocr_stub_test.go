//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNew_Stub(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() err = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStubOperations(t *testing.T) {
	c := &Client{}

	if _, err := c.Recognize([]byte("data")); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Recognize err = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage err = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close err = %v, want nil", err)
	}

	var nilClient *Client
	if err := nilClient.Close(); err != nil {
		t.Errorf("nil Close err = %v, want nil", err)
	}
}
