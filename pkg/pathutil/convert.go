// Package pathutil converts between absolute and relative paths.
//
// Config loading resolves every corpus path to an absolute one. User-facing
// output shows them relative to the config directory when they live under it.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails or path is already relative.
//
// Examples:
//   - ToRelative("/srv/rolex/data/rown.xml", "/srv/rolex") → "data/rown.xml"
//   - ToRelative("/other/corpus.txt", "/srv/rolex") → "/other/corpus.txt" (outside root)
//   - ToRelative("data/corpus.txt", "/srv/rolex") → "data/corpus.txt" (already relative)
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}

	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		// e.g. different drives on Windows
		return absPath
	}

	// outside the root the absolute path is clearer
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}

	return relPath
}

// ToRelativeAll applies ToRelative to every path. The input is not modified.
func ToRelativeAll(paths []string, rootDir string) []string {
	if len(paths) == 0 {
		return paths
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ToRelative(p, rootDir)
	}
	return out
}
