// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const baseURL = "http://www.gravatar.com/avatar"

// URL returns the avatar URL for an email at the given pixel size, using
// the "retro" default image and a "g" rating.
func URL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=%d&d=retro&r=g", baseURL, hash, size)
}
