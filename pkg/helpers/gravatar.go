package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL builds a Gravatar image URL for the given email: 200px,
// PG-rated, with the "mystery man" default for addresses without an avatar.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
