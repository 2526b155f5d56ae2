package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF", "IMAGE"}

// AllowedExtensions holds the allowed file extensions for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExt maps a normalized extension to its ExtractJob format.
func FormatForExt(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return "PDF"
	}
	return "IMAGE"
}
