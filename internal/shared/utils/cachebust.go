package utils

import (
	"fmt"
	"strings"
	"time"
)

// CacheBust appends a fresh cache-busting token to url so browsers
// re-fetch a replaced image. A previous token is not stripped first.
func CacheBust(url string) string {
	ts := time.Now().UnixMilli()
	if strings.Contains(url, "?") {
		return fmt.Sprintf("%s&t=%d", url, ts)
	}
	return fmt.Sprintf("%s?t=%d", url, ts)
}

// EnsureCacheBust appends a token only when the url does not already
// carry one. Presence is detected by a plain "t=" substring check, the
// same coarse rule the admin UI has always used.
func EnsureCacheBust(url string) string {
	if url == "" || strings.Contains(url, "t=") {
		return url
	}
	return CacheBust(url)
}
