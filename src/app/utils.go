package app

import (
	"os"
	"path/filepath"
	"strings"
)

var compressionSuffixes = []string{".xz", ".lzma"}

func ExpandPath(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// splitCompression returns path without a trailing .xz/.lzma suffix and the
// suffix that was removed.
func splitCompression(path string) (string, string) {
	lower := strings.ToLower(path)
	for _, s := range compressionSuffixes {
		if strings.HasSuffix(lower, s) {
			return path[:len(path)-len(s)], s
		}
	}
	return path, ""
}

// dumpBaseName is the file name of a dump without compression or format
// extensions, used as the prefix of everything written for it.
func dumpBaseName(path string) string {
	inner, _ := splitCompression(filepath.Base(path))
	return strings.TrimSuffix(inner, filepath.Ext(inner))
}

// sanitizeFileName keeps generated output names free of separators.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}
