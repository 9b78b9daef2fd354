package target

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Normalize canonicalizes a user-supplied target domain: lowercased,
// scheme and path stripped, trailing dot removed. It rejects anything
// that is not under a known public suffix, which catches bare hostnames
// and most typos before any external tool runs.
func Normalize(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimSuffix(d, ".")

	if d == "" {
		return "", fmt.Errorf("no domain provided")
	}
	if strings.ContainsAny(d, " \t") {
		return "", fmt.Errorf("invalid domain %q", domain)
	}

	if _, err := publicsuffix.EffectiveTLDPlusOne(d); err != nil {
		return "", fmt.Errorf("%q is not a registrable domain: %w", domain, err)
	}
	return d, nil
}
