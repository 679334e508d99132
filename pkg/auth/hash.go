package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashPassword derives a salted digest stored as "<salt>$<digest>",
// with a 16-byte random hex salt and sha256 over password+salt. The
// format is shared with existing credential files, so it must not
// change shape.
func hashPassword(password string) string {
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	return hashWithSalt(password, hex.EncodeToString(salt))
}

func hashWithSalt(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return salt + "$" + hex.EncodeToString(sum[:])
}

// verifyPassword recomputes the digest with the stored salt and
// compares. A malformed stored value verifies false.
func verifyPassword(password, stored string) bool {
	salt, _, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	return hashWithSalt(password, salt) == stored
}
