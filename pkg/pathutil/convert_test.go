package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestToRelative(t *testing.T) {
	tests := []struct {
		name     string
		absPath  string
		rootDir  string
		expected string
	}{
		{
			name:     "corpus under root",
			absPath:  "/srv/rolex/data/rown.xml",
			rootDir:  "/srv/rolex",
			expected: "data/rown.xml",
		},
		{
			name:     "nested glob match",
			absPath:  "/srv/rolex/data/vocab/nouns/a.txt",
			rootDir:  "/srv/rolex",
			expected: "data/vocab/nouns/a.txt",
		},
		{
			name:     "config file",
			absPath:  "/srv/rolex/.rolex.kdl",
			rootDir:  "/srv/rolex",
			expected: ".rolex.kdl",
		},
		{
			name:     "same directory",
			absPath:  "/srv/rolex",
			rootDir:  "/srv/rolex",
			expected: ".",
		},
		{
			name:     "already relative path",
			absPath:  "data/rown.xml",
			rootDir:  "/srv/rolex",
			expected: "data/rown.xml", // Should return as-is if already relative
		},
		{
			name:     "path outside root - fallback to absolute",
			absPath:  "/other/location/corpus.txt",
			rootDir:  "/srv/rolex",
			expected: "/other/location/corpus.txt", // Should return absolute if outside root
		},
		{
			name:     "empty root directory",
			absPath:  "/srv/rolex/corpus.txt",
			rootDir:  "",
			expected: "/srv/rolex/corpus.txt", // Fallback to absolute
		},
		{
			name:     "empty absolute path",
			absPath:  "",
			rootDir:  "/srv/rolex",
			expected: "", // Empty stays empty
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToRelative(tt.absPath, tt.rootDir)

			// Normalize separators for cross-platform testing
			if runtime.GOOS == "windows" {
				result = filepath.ToSlash(result)
				expected := filepath.ToSlash(tt.expected)
				if result != expected {
					t.Errorf("ToRelative() = %v, want %v", result, expected)
				}
			} else {
				if result != tt.expected {
					t.Errorf("ToRelative() = %v, want %v", result, tt.expected)
				}
			}
		})
	}
}

func TestToRelativeSiblingWithDotDotPrefix(t *testing.T) {
	got := ToRelative("/srv/rolex/..data/corpus.txt", "/srv/rolex")
	if got != filepath.Join("..data", "corpus.txt") {
		t.Errorf("ToRelative() = %v, want ..data/corpus.txt", got)
	}
}

func TestToRelativeAll(t *testing.T) {
	paths := []string{"/srv/rolex/data/a.txt", "/elsewhere/b.txt"}
	got := ToRelativeAll(paths, "/srv/rolex")

	if got[0] != filepath.Join("data", "a.txt") || got[1] != "/elsewhere/b.txt" {
		t.Errorf("ToRelativeAll() = %v", got)
	}
	if paths[0] != "/srv/rolex/data/a.txt" {
		t.Error("ToRelativeAll() modified its input")
	}
	if ToRelativeAll(nil, "/srv/rolex") != nil {
		t.Error("ToRelativeAll(nil) should return nil")
	}
}
