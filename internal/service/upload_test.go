package service

import (
	"strings"
	"testing"
	"time"
)

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"png ok", "image/png", 1024, nil},
		{"webp ok", "image/webp", 4 * 1024 * 1024, nil},
		{"exactly at limit", "image/jpeg", MaxImageBytes, nil},
		{"one byte over", "image/jpeg", MaxImageBytes + 1, ErrImageTooLarge},
		{"not an image", "text/plain", 10, ErrNotAnImage},
		{"pdf rejected", "application/pdf", 10, ErrNotAnImage},
		{"empty type", "", 10, ErrNotAnImage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateImage(tc.contentType, tc.size); err != tc.wantErr {
				t.Errorf("ValidateImage(%q, %d) = %v, want %v", tc.contentType, tc.size, err, tc.wantErr)
			}
		})
	}
}

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1717000000000)
	name := ObjectName("photo.PNG", now)
	if !strings.HasPrefix(name, "1717000000000-") {
		t.Errorf("name %q missing timestamp prefix", name)
	}
	if !strings.HasSuffix(name, ".PNG") {
		t.Errorf("name %q lost original extension", name)
	}
	// timestamp + dash + 6-char token + ext
	base := strings.TrimSuffix(name, ".PNG")
	parts := strings.SplitN(base, "-", 2)
	if len(parts) != 2 || len(parts[1]) != 6 {
		t.Errorf("name %q has malformed token part", name)
	}
}

func TestObjectName_NoExtension(t *testing.T) {
	name := ObjectName("rawfile", time.Now())
	if strings.Contains(name, ".") {
		t.Errorf("name %q should have no extension", name)
	}
}

func TestObjectName_Distinct(t *testing.T) {
	now := time.Now()
	a := ObjectName("x.jpg", now)
	b := ObjectName("x.jpg", now)
	if a == b {
		t.Errorf("two names for the same instant collided: %q", a)
	}
}
