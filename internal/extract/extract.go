package extract

import (
	"net/url"
	"strings"
)

// Segments returns the non-empty path components of rawURL in order.
// Scheme, host, port, query string and fragment are ignored; only http
// and https URLs contribute segments. Segments are returned exactly as
// they appeared on the wire: no percent-decoding and no case folding,
// so /Admin and /admin stay distinct terms.
//
// Malformed input is not an error: it yields an empty result so one bad
// line never aborts a batch.
func Segments(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}

	// RawPath carries the original bytes whenever they differ from
	// the decoded form; falling back to Path keeps already-plain
	// input untouched. EscapedPath would re-escape characters that
	// arrived unescaped.
	path := u.Path
	if u.RawPath != "" {
		path = u.RawPath
	}
	if path == "" || path == "/" {
		return nil
	}

	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
