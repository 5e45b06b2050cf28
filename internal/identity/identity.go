// Package identity derives a stable pseudo-identity for anonymous callers.
//
// The token is a pure function of the caller's network origin and a
// client-presented signature string (normally the User-Agent header), so the
// same visitor on the same device resolves to the same token across requests
// and process restarts. It scopes like-uniqueness and comment ownership; it
// is a fingerprint, not a credential, and makes no attempt to resist
// spoofing.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenLength is the length of a derived identity token in hex characters.
const TokenLength = 32

// Derive computes the identity token for an (origin, signature) pair.
// Deterministic and stateless; distinct pairs collide only with negligible
// probability.
func Derive(origin, signature string) string {
	sum := sha256.Sum256([]byte(origin + "\x00" + signature))
	return hex.EncodeToString(sum[:])[:TokenLength]
}
