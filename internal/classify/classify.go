package classify

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultExtensions lists the file extensions treated as static assets.
// Segments ending in one of these never make it into the wordlist.
var DefaultExtensions = []string{
	"js", "css", "png", "jpg", "jpeg", "gif", "ico", "svg",
	"ttf", "woff", "woff2", "eot", "swf",
	"pdf", "doc", "docx", "xls", "xlsx",
	"mp4", "mp3", "avi", "mov",
	"zip", "rar", "tar", "gz",
	"exe", "dmg", "iso",
	"bmp", "webp",
}

// Set decides whether a path segment names a static asset based on its
// file extension. Comparison is case-insensitive on the extension only.
type Set struct {
	exts mapset.Set[string]
}

// New builds a Set from a list of extensions. A leading dot and any
// casing in the configured extensions are normalized away.
func New(extensions []string) Set {
	exts := mapset.NewThreadUnsafeSet[string]()
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" {
			exts.Add(ext)
		}
	}
	return Set{exts: exts}
}

// Default returns a Set over DefaultExtensions.
func Default() Set {
	return New(DefaultExtensions)
}

// IsStatic reports whether segment is a static asset. Segments without a
// dot, or with nothing after the final dot, are directory names and are
// never static.
func (s Set) IsStatic(segment string) bool {
	i := strings.LastIndexByte(segment, '.')
	if i < 0 || i == len(segment)-1 {
		return false
	}
	return s.exts.Contains(strings.ToLower(segment[i+1:]))
}
