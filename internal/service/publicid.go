package service

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

const publicIDPrefix = "rest_"

// GeneratePublicID returns an unguessable restaurant identifier of the form
// "rest_xxxxxxxx". It stands in for the internal id in every externally
// reachable URL, acting as a bearer capability. Collisions are not
// pre-checked; the unique index on restaurants.public_id is the guard.
func GeneratePublicID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no usable entropy
		// source; nothing sensible can be served at that point.
		panic(err)
	}
	token := base64.URLEncoding.EncodeToString(buf)
	token = strings.NewReplacer("_", "", "-", "", "=", "").Replace(token)
	if len(token) > 8 {
		token = token[:8]
	}
	return publicIDPrefix + token
}
