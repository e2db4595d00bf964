package engine

import (
	"testing"

	"github.com/lixenwraith/keyfall/charset"
)

func TestModeOptionHotkey(t *testing.T) {
	tests := []struct {
		label string
		want  rune
	}{
		{"English", 'e'},
		{"Zhuyin", 'z'},
		{"", 0},
	}
	for _, tt := range tests {
		o := ModeOption{Mode: charset.ModeEnglish, Label: tt.label}
		if got := o.Hotkey(); got != tt.want {
			t.Errorf("Hotkey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
