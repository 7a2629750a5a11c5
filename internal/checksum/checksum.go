// Package checksum fingerprints content files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ETag formats a digest as a strong HTTP entity tag.
func ETag(sum string) string {
	return strconv.Quote(sum)
}

// MatchETag reports whether an If-None-Match header value names sum.
// Surrounding quotes and a weak "W/" prefix are ignored.
func MatchETag(header, sum string) bool {
	if header == "" || sum == "" {
		return false
	}
	if header == "*" {
		return true
	}
	if len(header) > 2 && header[:2] == "W/" {
		header = header[2:]
	}
	if unq, err := strconv.Unquote(header); err == nil {
		header = unq
	}
	return header == sum
}
