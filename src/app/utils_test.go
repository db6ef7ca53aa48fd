package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPathExpandsHomeDirectory(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	got := ExpandPath("~/dumps")
	want := filepath.Join(home, "dumps")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPathLeavesAbsolutePathUnchanged(t *testing.T) {
	path := "/tmp/dumps"
	if got := ExpandPath(path); got != path {
		t.Fatalf("ExpandPath(%q) = %q, want same", path, got)
	}
}

func TestSplitCompression(t *testing.T) {
	tests := []struct {
		in, path, suffix string
	}{
		{"sprite.txt", "sprite.txt", ""},
		{"sprite.txt.xz", "sprite.txt", ".xz"},
		{"SCREEN.BIN.LZMA", "SCREEN.BIN", ".lzma"},
	}
	for _, tt := range tests {
		path, suffix := splitCompression(tt.in)
		if path != tt.path || suffix != tt.suffix {
			t.Fatalf("splitCompression(%q) = %q, %q; want %q, %q", tt.in, path, suffix, tt.path, tt.suffix)
		}
	}
}

func TestDumpBaseName(t *testing.T) {
	tests := []struct{ in, want string }{
		{filepath.Join("/tmp", "dir", "icons.txt"), "icons"},
		{filepath.Join("/tmp", "dir", "icons.bin.xz"), "icons"},
		{"menu.txt.lzma", "menu"},
	}
	for _, tt := range tests {
		if got := dumpBaseName(tt.in); got != tt.want {
			t.Fatalf("dumpBaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := sanitizeFileName("a b/c:d"); got != "a_b_c_d" {
		t.Fatalf("sanitizeFileName = %q", got)
	}
}
