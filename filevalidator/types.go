package filevalidator

// Category groups detected file types by broad media kind
type Category string

const (
	CategoryImage      Category = "image"
	CategoryVideo      Category = "video"
	CategoryAudio      Category = "audio"
	CategoryDocument   Category = "document"
	CategoryArchive    Category = "archive"
	CategoryExecutable Category = "executable"
	CategoryFont       Category = "font"
	CategoryText       Category = "text"
)

// FileType describes a type recognised from its magic bytes.
type FileType struct {
	// MIME is the media type, e.g. "image/jpeg".
	MIME string

	// Extension is the canonical extension without the leading dot, e.g. "jpg".
	Extension string

	// Category is the broad media kind.
	Category Category
}

// fileTypes maps every MIME type the detector can produce to its description
var fileTypes = map[string]FileType{
	"image/jpeg":                {MIME: "image/jpeg", Extension: "jpg", Category: CategoryImage},
	"image/png":                 {MIME: "image/png", Extension: "png", Category: CategoryImage},
	"image/gif":                 {MIME: "image/gif", Extension: "gif", Category: CategoryImage},
	"image/webp":                {MIME: "image/webp", Extension: "webp", Category: CategoryImage},
	"image/tiff":                {MIME: "image/tiff", Extension: "tif", Category: CategoryImage},
	"image/x-icon":              {MIME: "image/x-icon", Extension: "ico", Category: CategoryImage},
	"image/vnd.adobe.photoshop": {MIME: "image/vnd.adobe.photoshop", Extension: "psd", Category: CategoryImage},
	"image/bmp":                 {MIME: "image/bmp", Extension: "bmp", Category: CategoryImage},
	"image/heif":                {MIME: "image/heif", Extension: "heif", Category: CategoryImage},
	"image/avif":                {MIME: "image/avif", Extension: "avif", Category: CategoryImage},

	"video/mp4":        {MIME: "video/mp4", Extension: "mp4", Category: CategoryVideo},
	"video/x-m4v":      {MIME: "video/x-m4v", Extension: "m4v", Category: CategoryVideo},
	"video/quicktime":  {MIME: "video/quicktime", Extension: "mov", Category: CategoryVideo},
	"video/3gpp":       {MIME: "video/3gpp", Extension: "3gp", Category: CategoryVideo},
	"video/x-msvideo":  {MIME: "video/x-msvideo", Extension: "avi", Category: CategoryVideo},
	"video/webm":       {MIME: "video/webm", Extension: "webm", Category: CategoryVideo},
	"video/x-matroska": {MIME: "video/x-matroska", Extension: "mkv", Category: CategoryVideo},
	"video/x-ms-wmv":   {MIME: "video/x-ms-wmv", Extension: "wmv", Category: CategoryVideo},
	"video/mpeg":       {MIME: "video/mpeg", Extension: "mpg", Category: CategoryVideo},
	"video/x-flv":      {MIME: "video/x-flv", Extension: "flv", Category: CategoryVideo},

	"audio/mpeg": {MIME: "audio/mpeg", Extension: "mp3", Category: CategoryAudio},
	"audio/mp4":  {MIME: "audio/mp4", Extension: "m4a", Category: CategoryAudio},
	"audio/wav":  {MIME: "audio/wav", Extension: "wav", Category: CategoryAudio},
	"audio/flac": {MIME: "audio/flac", Extension: "flac", Category: CategoryAudio},
	"audio/ogg":  {MIME: "audio/ogg", Extension: "ogg", Category: CategoryAudio},
	"audio/aac":  {MIME: "audio/aac", Extension: "aac", Category: CategoryAudio},
	"audio/midi": {MIME: "audio/midi", Extension: "mid", Category: CategoryAudio},
	"audio/amr":  {MIME: "audio/amr", Extension: "amr", Category: CategoryAudio},

	"application/pdf":           {MIME: "application/pdf", Extension: "pdf", Category: CategoryDocument},
	"application/x-ole-storage": {MIME: "application/x-ole-storage", Extension: "cfb", Category: CategoryDocument},
	"application/rtf":           {MIME: "application/rtf", Extension: "rtf", Category: CategoryDocument},

	"application/zip":             {MIME: "application/zip", Extension: "zip", Category: CategoryArchive},
	"application/gzip":            {MIME: "application/gzip", Extension: "gz", Category: CategoryArchive},
	"application/x-tar":           {MIME: "application/x-tar", Extension: "tar", Category: CategoryArchive},
	"application/vnd.rar":         {MIME: "application/vnd.rar", Extension: "rar", Category: CategoryArchive},
	"application/x-7z-compressed": {MIME: "application/x-7z-compressed", Extension: "7z", Category: CategoryArchive},
	"application/x-bzip2":         {MIME: "application/x-bzip2", Extension: "bz2", Category: CategoryArchive},
	"application/x-xz":            {MIME: "application/x-xz", Extension: "xz", Category: CategoryArchive},

	"application/vnd.microsoft.portable-executable": {MIME: "application/vnd.microsoft.portable-executable", Extension: "exe", Category: CategoryExecutable},
	"application/x-mach-binary":                     {MIME: "application/x-mach-binary", Extension: "macho", Category: CategoryExecutable},
	"application/x-executable":                      {MIME: "application/x-executable", Extension: "elf", Category: CategoryExecutable},
	"application/wasm":                              {MIME: "application/wasm", Extension: "wasm", Category: CategoryExecutable},

	"font/woff":  {MIME: "font/woff", Extension: "woff", Category: CategoryFont},
	"font/woff2": {MIME: "font/woff2", Extension: "woff2", Category: CategoryFont},
	"font/otf":   {MIME: "font/otf", Extension: "otf", Category: CategoryFont},
	"font/ttf":   {MIME: "font/ttf", Extension: "ttf", Category: CategoryFont},

	"text/xml":  {MIME: "text/xml", Extension: "xml", Category: CategoryText},
	"text/html": {MIME: "text/html", Extension: "html", Category: CategoryText},
}

// Classification is the outcome of ValidateFile.
type Classification int

const (
	// Invalid means the content is neither an image nor a video, or its
	// extension does not match the content.
	Invalid Classification = iota
	Image
	Video
)

// String implements fmt.Stringer
func (c Classification) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "invalid"
	}
}

// classify maps a category onto the tri-state outcome
func classify(category Category) Classification {
	switch category {
	case CategoryImage:
		return Image
	case CategoryVideo:
		return Video
	default:
		return Invalid
	}
}
