package crypto

// PasswordService derives and verifies the single admin credential.
//
// The stored form is "salt$hexdigest": a random hex salt and the
// hex-encoded PBKDF2-HMAC-SHA256 key derived from the plaintext under that
// salt. The service knows nothing about sessions, HTTP, or configuration —
// it only turns plaintext passwords into credentials and back-checks them.
type PasswordService interface {
	// HashPassword generates a fresh random salt and returns the credential
	// in "salt$hexdigest" form. Returns an error only if the OS CSPRNG
	// fails to produce the salt.
	HashPassword(plaintext string) (string, error)

	// CheckPassword re-derives the key from plaintext and the salt embedded
	// in stored, and compares it to the stored digest in constant time.
	// A malformed stored value (no "$" separator, empty parts) yields
	// false, never an error.
	CheckPassword(stored, plaintext string) bool
}
