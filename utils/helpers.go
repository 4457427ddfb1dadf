package utils

import (
	"net/url"
	"strings"
)

// UnknownHost is recorded when a URL cannot be parsed into a hostname.
const UnknownHost = "unknown"

// ExtractHost pulls the lowercased host[:port] out of a raw URL string.
// Malformed input degrades to UnknownHost instead of an error so tracking
// never aborts on bad data.
func ExtractHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return UnknownHost
	}
	return strings.ToLower(u.Host)
}
