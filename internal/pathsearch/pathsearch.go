// Package pathsearch resolves executable names against $PATH, the one
// lookup both the `type` builtin and the external-command executor need.
package pathsearch

import (
	"os"
	"path/filepath"
	"strings"
)

// Find returns the full path of the first regular, executable file named
// name found on PATH, searching directories left to right.
func Find(name string) (string, bool) {
	for _, dir := range splitPath() {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0o111 != 0 {
			return candidate, true
		}
	}
	return "", false
}

// AllNames returns the deduplicated basenames of every executable regular
// file across PATH, in directory order, first match wins. Directories
// that can't be read (missing, no permission) are skipped silently.
func AllNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range splitPath() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || seen[e.Name()] {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			seen[e.Name()] = true
			names = append(names, e.Name())
		}
	}
	return names
}

func splitPath() []string {
	raw := os.Getenv("PATH")
	if raw == "" {
		return nil
	}
	var dirs []string
	for _, d := range strings.Split(raw, string(os.PathListSeparator)) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
