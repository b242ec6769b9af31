package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// hashIterations is the PBKDF2 round count shared by hashing and
// verification. Both paths MUST use this one constant: a credential hashed
// with a different count can never verify.
const hashIterations = 600_000

const (
	saltBytes = 16
	keyBytes  = 32
)

// passwordService is the private implementation of [PasswordService].
type passwordService struct {
	// iterations is the PBKDF2 round count. Kept in the struct so a
	// deployment can tune it, but it always defaults to hashIterations.
	iterations int
}

// NewPasswordService constructs a [PasswordService] using
// PBKDF2-HMAC-SHA256 with 600,000 rounds, a 16-byte random salt and a
// 32-byte derived key.
func NewPasswordService() PasswordService {
	return &passwordService{iterations: hashIterations}
}

// HashPassword implements [PasswordService]. The salt is read from the OS
// CSPRNG and rendered as hex; the derivation uses the salt's hex rendering
// as the PBKDF2 salt input, so the stored string alone fully determines
// verification.
func (p *passwordService) HashPassword(plaintext string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)

	digest := p.derive(plaintext, salt)
	return salt + "$" + digest, nil
}

// CheckPassword implements [PasswordService]. The stored value is split on
// the first "$"; anything malformed fails closed. The digest comparison is
// constant-time to avoid timing side channels.
func (p *passwordService) CheckPassword(stored, plaintext string) bool {
	salt, digest, found := strings.Cut(stored, "$")
	if !found || salt == "" || digest == "" {
		return false
	}

	derived := p.derive(plaintext, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(digest)) == 1
}

// derive runs the key derivation and returns the hex-encoded key.
func (p *passwordService) derive(plaintext, salt string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), p.iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key)
}
