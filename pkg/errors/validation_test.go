package errors

import (
	"strings"
	"testing"
)

func TestValidateMetadataPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "textures/gui/button.png.moremcmeta", false},
		{"absolute", "/srv/pack/gui.json", false},
		{"with spaces", "my pack/gui.yaml", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "gui\x00.json", true},
		{"newline", "gui\n.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMetadataPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMetadataPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateMetadataPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateSectionPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", "", false},
		{"single", "gui", false},
		{"nested", "plugins.gui", false},

		{"leading dot", ".gui", true},
		{"trailing dot", "gui.", true},
		{"double dot", "a..b", true},
		{"space", "my gui", true},
		{"tab", "gui\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSectionPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
