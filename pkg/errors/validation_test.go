package errors

import (
	"strings"
	"testing"
)

func TestValidateLayoutID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid UUID", "c1b9d5a2-4ca4-41a6-8a0e-5a2b3c4d5e6f", false},
		{"valid uppercase UUID", "C1B9D5A2-4CA4-41A6-8A0E-5A2B3C4D5E6F", false},
		{"empty", "", true},
		{"not a UUID", "my-layout", true},
		{"truncated UUID", "c1b9d5a2-4ca4-41a6", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLayoutID) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidLayoutID)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple filename", "layout.json", false},
		{"nested path", "out/layouts/graph.svg", false},
		{"absolute path", "/tmp/layout.json", false},
		{"empty", "", true},
		{"parent traversal", "../secrets.json", true},
		{"embedded traversal", "out/../../etc/passwd", true},
		{"control character", "layout\x00.json", true},
		{"newline", "layout\n.json", true},
		{"too long", strings.Repeat("a", 501), true},
		{"max length", strings.Repeat("a", 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
