package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListOptions configures ListNames
type ListOptions struct {
	// IncludeHidden keeps entries whose names start with "."
	IncludeHidden bool
	// FilesOnly drops subdirectories
	FilesOnly bool
	// Extensions is a list of file extensions to include (e.g., ".exr", "png")
	Extensions []string
}

// ListNames returns the names of the entries directly inside path, sorted.
// If path is not a directory its base name is returned as the only entry.
func ListNames(path string, opts ListOptions) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	extMap := extensionSet(opts.Extensions)

	if !info.IsDir() {
		name := filepath.Base(path)
		if !matchesExtension(name, extMap) {
			return []string{}, nil
		}
		return []string{name}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			if opts.FilesOnly {
				continue
			}
			// Extension filters apply to files only
			names = append(names, name)
			continue
		}
		if !matchesExtension(name, extMap) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// extensionSet normalizes extensions to lower case with a leading dot.
func extensionSet(exts []string) map[string]bool {
	extMap := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}
	return extMap
}

func matchesExtension(name string, extMap map[string]bool) bool {
	if len(extMap) == 0 {
		return true
	}
	return extMap[strings.ToLower(filepath.Ext(name))]
}
