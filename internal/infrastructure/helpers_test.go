package infrastructure

import (
	"errors"
	"testing"

	"github.com/shan-traders/storefront-backend/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	tests := []struct {
		mime    string
		want    string
		wantErr bool
	}{
		{"image/jpeg", "jpg", false},
		{"image/jpg", "jpg", false},
		{"image/png", "png", false},
		{"image/webp", "webp", false},
		{"image/gif", "bin", true},
		{"application/pdf", "bin", true},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			got, err := GetExtensionFromMIME(tt.mime)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.wantErr != (err != nil) {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, e.ErrUnsupportedMediaType) {
				t.Errorf("expected ErrUnsupportedMediaType, got %v", err)
			}
		})
	}
}

func TestSanitizeFileBase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lighter.png", "lighter"},
		{"My Photo (1).JPG", "myphoto1"},
		{"snake_case-name.webp", "snake_case-name"},
		{"....png", "product"},
		{"фото.png", "product"},
		{"no-extension", "no-extension"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileBase(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
