package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Gravatar rendering parameters: 200px size, "pg" rating ceiling and the
// "mm" (mystery man) fallback image. Part of the avatar URL contract.
const (
	gravatarSize    = "200"
	gravatarRating  = "pg"
	gravatarDefault = "mm"
)

// GravatarURL derives a deterministic avatar URL from an email address.
//
// The email is lowercased and trimmed before hashing with MD5, per the
// gravatar specification. No network call is performed; the URL is purely
// a function of the input.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return fmt.Sprintf(
		"//www.gravatar.com/avatar/%s?s=%s&r=%s&d=%s",
		hex.EncodeToString(sum[:]), gravatarSize, gravatarRating, gravatarDefault,
	)
}
