package keys

import "encoding/base64"

// MaxEncodedLen is the longest encoded key the fast tier accepts.
const MaxEncodedLen = 1024

// Encode transforms an arbitrary user key into a storage-safe identifier.
// Unpadded base64url keeps the output within [A-Za-z0-9_-], which satisfies
// the fast tier key pattern (alphanumeric, hyphen, underscore, dot). The
// transform is deterministic and reversible, though nothing in this module
// ever decodes it.
func Encode(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}
