// Package filevalidator decides whether a file is an image or a video by
// looking at its content rather than its name.
//
// Detection reads at most the first 8 KiB of a file and matches it against a
// table of magic-number signatures. Container formats that share a header
// (RIFF, ISO base media, EBML) are refined by their sub-format or brand.
//
// # Classification
//
//	kind, err := filevalidator.ValidateFile("uploads/cat.jpg", true)
//	switch {
//	case filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeIO):
//	    // missing or unreadable file
//	case errors.Is(err, filevalidator.ErrUnknownFileType):
//	    // readable, but no known signature
//	case kind == filevalidator.Image:
//	case kind == filevalidator.Video:
//	default:
//	    // Invalid: other media, or the extension does not match the content
//	}
//
// With the extension check enabled, the path must end with the canonical
// extension of the detected type ("jpg" for JPEG, "mov" for QuickTime), in any
// letter case. A JPEG saved as "cat.png" or "cat.jpg.png" is Invalid.
//
// # Detection only
//
//	ft, err := filevalidator.DetectFile("clip.bin")
//	fmt.Println(ft.MIME, ft.Extension, ft.Category) // video/mp4 mp4 video
//
// All functions are stateless and safe for concurrent use.
package filevalidator
