package auth

import (
	"strings"

	"github.com/google/uuid"
)

// NewToken generates an opaque session token. The token carries no claims;
// it is persisted on the user row and compared byte-for-byte on each request.
func NewToken() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
