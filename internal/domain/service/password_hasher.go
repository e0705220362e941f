// Package service declares the ports the usecases depend on: hashing, tokens,
// the session cache, mail, storage and metrics. Implementations live under infra.
package service

// MaxPasswordBytes is the longest plaintext bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// PasswordHasher turns plaintext passwords into stored digests. Only digests are
// ever persisted or carried in reset tokens.
type PasswordHasher interface {
	// Hash returns a fresh salted digest of password.
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}
