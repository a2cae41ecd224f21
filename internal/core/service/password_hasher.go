package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the platform has always used for stored
// credentials. Changing it only affects newly hashed passwords.
const bcryptCost = 12

// BcryptHasher hashes passwords with bcrypt. Each Hash call salts randomly,
// so two hashes of the same password never compare equal as strings.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Mismatches and malformed
// digests both return false; the comparison itself is constant-time.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
