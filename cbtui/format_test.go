package cbtui

import (
	"os"
	"testing"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B   "},
		{name: "under a KiB", bytes: 512, want: "512 B   "},
		{name: "one KiB", bytes: 1024, want: "1.0 KiB "},
		{name: "fractional KiB", bytes: 1536, want: "1.5 KiB "},
		{name: "MiB", bytes: 5 * 1024 * 1024, want: "5.0 MiB "},
		{name: "GiB", bytes: 2 * 1024 * 1024 * 1024, want: "2.0 GiB "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFileSize(tt.bytes); got != tt.want {
				t.Errorf("formatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatPermissions(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want string
	}{
		{name: "rw-r--r--", mode: 0o644, want: "rw-r--r--"},
		{name: "rwxr-xr-x", mode: 0o755, want: "rwxr-xr-x"},
		{name: "rw-------", mode: 0o600, want: "rw-------"},
		{name: "none", mode: 0, want: "---------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPermissions(tt.mode); got != tt.want {
				t.Errorf("formatPermissions(%04o) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want string
	}{
		{name: "plain file", mode: 0o644, want: ""},
		{name: "executable", mode: 0o755, want: "x"},
		{name: "symlink", mode: os.ModeSymlink | 0o644, want: "l"},
		{name: "executable symlink", mode: os.ModeSymlink | 0o755, want: "lx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFlags(tt.mode); got != tt.want {
				t.Errorf("formatFlags(%v) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestAdjustColorForSelection(t *testing.T) {
	selected := adjustColorForSelection(WhiteColor, true)
	unselected := adjustColorForSelection(WhiteColor, false)
	if selected == unselected {
		t.Error("selected and unselected colors should differ")
	}
	// A bad hex string passes through unchanged rather than erroring.
	if got := adjustColorForSelection("nonsense", true); got != "nonsense" {
		t.Errorf("adjustColorForSelection(bad hex) = %q, want passthrough", got)
	}
}
