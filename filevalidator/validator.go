package filevalidator

import (
	"os"
	"strings"
)

// ValidateFile sniffs the file at path and classifies it as an image, a video
// or invalid content. The name in path plays no part in detection.
//
// When checkExtension is set, path must also end with the canonical extension
// of the detected type (compared case-insensitively). A mismatch yields
// Invalid rather than an error.
//
// Errors are *ValidationError values of type ErrorTypeIO when the file cannot
// be opened or read, and ErrUnknownFileType when no signature matches.
func ValidateFile(path string, checkExtension bool) (Classification, error) {
	f, err := os.Open(path)
	if err != nil {
		return Invalid, newIOError(err)
	}
	defer f.Close()

	ft, err := DetectReader(f)
	if err != nil {
		return Invalid, err
	}

	return classifyAs(path, ft, checkExtension), nil
}

// ValidateBytes is ValidateFile for content already in memory. name stands in
// for the path during the extension check.
func ValidateBytes(name string, data []byte, checkExtension bool) (Classification, error) {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	ft, ok := DetectFileType(data)
	if !ok {
		return Invalid, ErrUnknownFileType
	}

	return classifyAs(name, ft, checkExtension), nil
}

func classifyAs(name string, ft FileType, checkExtension bool) Classification {
	if checkExtension && !HasExtension(name, ft.Extension) {
		return Invalid
	}
	return classify(ft.Category)
}

// HasExtension reports whether name ends with "." + ext, ignoring case.
// Only the final suffix counts: "photo.jpg.png" does not have extension "jpg".
func HasExtension(name, ext string) bool {
	if ext == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), "."+strings.ToLower(ext))
}
