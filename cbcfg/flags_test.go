package cbcfg_test

import (
	"os"
	"testing"

	"github.com/mikeschinkel/codebrowse/cbcfg"
)

func TestFlags_Parse(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "No arguments defaults to working directory",
			args: nil,
			want: cwd,
		},
		{
			name: "Positional argument sets root directory",
			args: []string{"/tmp/project"},
			want: "/tmp/project",
		},
		{
			name:    "Unknown flag is rejected",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flgs := cbcfg.NewFlags()
			err := flgs.Parse(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%v) expected error, got nil", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%v) unexpected error: %v", tt.args, err)
			}
			if flgs.RootDir != tt.want {
				t.Errorf("RootDir = %q, want %q", flgs.RootDir, tt.want)
			}
		})
	}
}
