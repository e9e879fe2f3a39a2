package filevalidator

import (
	"bytes"
	"io"
	"os"
)

// sniffLen is how much of a file is read for signature matching.
const sniffLen = 8192

// MagicSignature defines a file type signature
type MagicSignature struct {
	MIME   string
	Offset int    // Offset from start of file
	Magic  []byte // Magic bytes to match
}

// magicSignatures contains file signatures for type detection.
// Ordered by specificity (most specific first)
var magicSignatures = []MagicSignature{
	// Images
	{MIME: "image/jpeg", Offset: 0, Magic: []byte{0xFF, 0xD8, 0xFF}},
	{MIME: "image/png", Offset: 0, Magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{MIME: "image/gif", Offset: 0, Magic: []byte("GIF87a")},
	{MIME: "image/gif", Offset: 0, Magic: []byte("GIF89a")},
	{MIME: "image/tiff", Offset: 0, Magic: []byte{0x49, 0x49, 0x2A, 0x00}}, // Little endian
	{MIME: "image/tiff", Offset: 0, Magic: []byte{0x4D, 0x4D, 0x00, 0x2A}}, // Big endian
	{MIME: "image/x-icon", Offset: 0, Magic: []byte{0x00, 0x00, 0x01, 0x00}},
	{MIME: "image/vnd.adobe.photoshop", Offset: 0, Magic: []byte("8BPS")},
	{MIME: "image/bmp", Offset: 0, Magic: []byte("BM")},

	// RIFF container, refined by the form type at offset 8
	{MIME: "application/x-riff", Offset: 0, Magic: []byte("RIFF")},

	// ISO base media (MP4, MOV, HEIF, AVIF, 3GP), refined by the major brand
	{MIME: "video/mp4", Offset: 4, Magic: []byte("ftyp")},
	{MIME: "video/quicktime", Offset: 4, Magic: []byte("moov")},
	{MIME: "video/quicktime", Offset: 4, Magic: []byte("mdat")},
	{MIME: "video/quicktime", Offset: 4, Magic: []byte("wide")},
	{MIME: "video/quicktime", Offset: 4, Magic: []byte("free")},

	// Video
	{MIME: "video/webm", Offset: 0, Magic: []byte{0x1A, 0x45, 0xDF, 0xA3}}, // EBML (WebM/MKV)
	{MIME: "video/x-ms-wmv", Offset: 0, Magic: []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11}},
	{MIME: "video/mpeg", Offset: 0, Magic: []byte{0x00, 0x00, 0x01, 0xBA}},
	{MIME: "video/mpeg", Offset: 0, Magic: []byte{0x00, 0x00, 0x01, 0xB3}},
	{MIME: "video/x-flv", Offset: 0, Magic: []byte("FLV\x01")},

	// Documents
	{MIME: "application/pdf", Offset: 0, Magic: []byte("%PDF-")},
	{MIME: "application/x-ole-storage", Offset: 0, Magic: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
	{MIME: "application/rtf", Offset: 0, Magic: []byte("{\\rtf")},

	// Archives
	{MIME: "application/zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x03, 0x04}},
	{MIME: "application/zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x05, 0x06}}, // Empty ZIP
	{MIME: "application/zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x07, 0x08}}, // Spanned ZIP
	{MIME: "application/gzip", Offset: 0, Magic: []byte{0x1F, 0x8B}},
	{MIME: "application/x-tar", Offset: 257, Magic: []byte("ustar")},
	{MIME: "application/vnd.rar", Offset: 0, Magic: []byte("Rar!\x1a\x07\x00")},
	{MIME: "application/vnd.rar", Offset: 0, Magic: []byte("Rar!\x1a\x07\x01\x00")}, // RAR5
	{MIME: "application/x-7z-compressed", Offset: 0, Magic: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{MIME: "application/x-bzip2", Offset: 0, Magic: []byte("BZh")},
	{MIME: "application/x-xz", Offset: 0, Magic: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},

	// Audio
	{MIME: "audio/mpeg", Offset: 0, Magic: []byte("ID3")},
	{MIME: "audio/mpeg", Offset: 0, Magic: []byte{0xFF, 0xFB}},
	{MIME: "audio/mpeg", Offset: 0, Magic: []byte{0xFF, 0xFA}},
	{MIME: "audio/mpeg", Offset: 0, Magic: []byte{0xFF, 0xF3}},
	{MIME: "audio/mpeg", Offset: 0, Magic: []byte{0xFF, 0xF2}},
	{MIME: "audio/flac", Offset: 0, Magic: []byte("fLaC")},
	{MIME: "audio/ogg", Offset: 0, Magic: []byte("OggS")},
	{MIME: "audio/aac", Offset: 0, Magic: []byte{0xFF, 0xF1}}, // ADTS
	{MIME: "audio/aac", Offset: 0, Magic: []byte{0xFF, 0xF9}}, // ADTS
	{MIME: "audio/midi", Offset: 0, Magic: []byte("MThd")},
	{MIME: "audio/amr", Offset: 0, Magic: []byte("#!AMR")},

	// Executables
	{MIME: "application/vnd.microsoft.portable-executable", Offset: 0, Magic: []byte("MZ")},
	{MIME: "application/x-mach-binary", Offset: 0, Magic: []byte{0xCF, 0xFA, 0xED, 0xFE}},
	{MIME: "application/x-mach-binary", Offset: 0, Magic: []byte{0xCE, 0xFA, 0xED, 0xFE}},
	{MIME: "application/x-executable", Offset: 0, Magic: []byte{0x7F, 'E', 'L', 'F'}},
	{MIME: "application/wasm", Offset: 0, Magic: []byte{0x00, 'a', 's', 'm'}},

	// Fonts
	{MIME: "font/woff", Offset: 0, Magic: []byte("wOFF")},
	{MIME: "font/woff2", Offset: 0, Magic: []byte("wOF2")},
	{MIME: "font/otf", Offset: 0, Magic: []byte("OTTO")},
	{MIME: "font/ttf", Offset: 0, Magic: []byte{0x00, 0x01, 0x00, 0x00, 0x00}},

	// Markup with an unambiguous prologue
	{MIME: "text/xml", Offset: 0, Magic: []byte("<?xml")},
	{MIME: "text/html", Offset: 0, Magic: []byte("<!DOCTYPE html")},
	{MIME: "text/html", Offset: 0, Magic: []byte("<!doctype html")},
	{MIME: "text/html", Offset: 0, Magic: []byte("<html")},
	{MIME: "text/html", Offset: 0, Magic: []byte("<HTML")},
}

// DetectFileType identifies data by its leading bytes. The second return value
// is false when no known signature matches.
func DetectFileType(data []byte) (FileType, bool) {
	if len(data) == 0 {
		return FileType{}, false
	}

	mime := detectByMagic(data)
	if mime == "" {
		return FileType{}, false
	}

	mime = refineDetection(data, mime)
	ft, ok := fileTypes[mime]
	return ft, ok
}

// DetectReader reads up to the sniffing window from reader and identifies it.
func DetectReader(reader io.Reader) (FileType, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FileType{}, newIOError(err)
	}

	ft, ok := DetectFileType(buf[:n])
	if !ok {
		return FileType{}, ErrUnknownFileType
	}
	return ft, nil
}

// DetectFile sniffs the file at path.
func DetectFile(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileType{}, newIOError(err)
	}
	defer f.Close()

	return DetectReader(f)
}

// detectByMagic checks data against known magic signatures
func detectByMagic(data []byte) string {
	for _, sig := range magicSignatures {
		if sig.Offset+len(sig.Magic) > len(data) {
			continue
		}

		if bytes.Equal(data[sig.Offset:sig.Offset+len(sig.Magic)], sig.Magic) {
			return sig.MIME
		}
	}
	return ""
}

// refineDetection handles cases where multiple formats share magic bytes.
// An empty result means the container was recognised but its payload was not.
func refineDetection(data []byte, initialMIME string) string {
	switch initialMIME {
	case "application/x-riff":
		if len(data) < 12 {
			return ""
		}
		switch string(data[8:12]) {
		case "WAVE":
			return "audio/wav"
		case "AVI ":
			return "video/x-msvideo"
		case "WEBP":
			return "image/webp"
		}
		return ""

	case "video/mp4":
		if len(data) < 12 {
			return initialMIME
		}
		switch string(data[8:12]) {
		case "heic", "heix", "heim", "heis", "hevc", "hevx", "mif1", "msf1":
			return "image/heif"
		case "avif", "avis":
			return "image/avif"
		case "M4A ", "M4B ", "F4A ":
			return "audio/mp4"
		case "M4V ", "M4VH", "M4VP":
			return "video/x-m4v"
		case "qt  ":
			return "video/quicktime"
		case "3gp4", "3gp5", "3gp6", "3gp7", "3gs7", "3ge6", "3ge7", "3gg6":
			return "video/3gpp"
		}
		return initialMIME

	case "video/webm":
		// Both use the EBML header; the DocType element names the flavour.
		head := data
		if len(head) > 64 {
			head = head[:64]
		}
		if bytes.Contains(head, []byte("matroska")) {
			return "video/x-matroska"
		}
		return initialMIME

	default:
		return initialMIME
	}
}
