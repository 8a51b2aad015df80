package langdetect_test

import (
	"testing"

	"github.com/mikeschinkel/codebrowse/langdetect"
)

func TestDetector_Guess(t *testing.T) {
	var d langdetect.Detector

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "Go file by extension",
			path:    "/home/user/project/main.go",
			content: "package main\n\nfunc main() {}\n",
			want:    "go",
		},
		{
			name:    "Python file by extension",
			path:    "script.py",
			content: "print('hello')\n",
			want:    "python",
		},
		{
			name:    "JSON file by extension",
			path:    "config.json",
			content: "{\"key\": \"value\"}\n",
			want:    "json",
		},
		{
			name:    "Markdown file by extension",
			path:    "README.md",
			content: "# Title\n",
			want:    "markdown",
		},
		{
			name:    "No extension falls back to content analysis",
			path:    "run-it",
			content: "#!/bin/bash\necho hello\n",
			want:    "bash",
		},
		{
			name:    "Unrecognizable content yields no language",
			path:    "noise",
			content: "zzz qqq xxx\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Guess(tt.path, tt.content)
			if got != tt.want {
				t.Errorf("Guess(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetector_GuessIsDeterministic(t *testing.T) {
	var d langdetect.Detector

	first := d.Guess("main.go", "package main\n")
	for i := 0; i < 3; i++ {
		if got := d.Guess("main.go", "package main\n"); got != first {
			t.Fatalf("Guess() returned %q after returning %q", got, first)
		}
	}
}

func TestDetector_Supported(t *testing.T) {
	var d langdetect.Detector

	tests := []struct {
		id   string
		want bool
	}{
		{"go", true},
		{"python", true},
		{"markdown", true},
		{"tex", false},
		{"", false},
		{"GO", false}, // identifiers are lowercase
	}

	for _, tt := range tests {
		if got := d.Supported(tt.id); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
