// Package security provides validation for values the host turns into paths.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateThemeID checks that a theme id can be used as a single directory
// name below the themes directory. The built-in theme ids ("" and "default")
// have no directory and are rejected.
func ValidateThemeID(id string) error {
	if id == "" || id == "default" {
		return fmt.Errorf("built-in theme has no stylesheet")
	}
	if id == "." || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("theme id %q contains path separators or traversal", id)
	}
	if strings.ContainsRune(id, 0) {
		return fmt.Errorf("theme id contains a NUL byte")
	}
	return nil
}

// ValidateFilePath validates a relative file path to prevent directory
// traversal. Ensures the joined path stays within baseDir.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	// Check for dangerous patterns
	if strings.Contains(filePath, "..") {
		return fmt.Errorf("file path contains directory traversal (..) - not allowed")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute paths are not allowed: %s", filePath)
	}

	// Ensure the final path would be within baseDir
	cleanFinal := filepath.Clean(filepath.Join(baseDir, filePath))
	cleanBase := filepath.Clean(baseDir)

	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) &&
		cleanFinal != cleanBase {
		return fmt.Errorf("file path would escape base directory")
	}

	return nil
}

// SafeUint8 safely converts an integer to uint8 with bounds checking.
// Values outside 0-255 are clamped to the valid range.
func SafeUint8(val int) uint8 {
	if val < 0 {
		return 0
	}
	if val > 255 {
		return 255
	}
	return uint8(val)
}
