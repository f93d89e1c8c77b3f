package command

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveSamplePath resolves a sample reference against a list of search
// directories. The candidates are tried in order: the path as given when
// absolute, each search directory joined with the path, then the path
// relative to the current working directory. Returns ErrSampleNotFound
// when nothing matches.
func ResolveSamplePath(path string, searchDirs []string) (string, error) {
	if filepath.IsAbs(path) {
		if fileExists(path) {
			return path, nil
		}
	}

	for _, dir := range searchDirs {
		candidate := filepath.Join(dir, path)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	if fileExists(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		return abs, nil
	}

	return "", fmt.Errorf("%w: %s", ErrSampleNotFound, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
