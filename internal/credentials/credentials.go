package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// DummyHash is a digest of a throwaway password. Login runs a compare
// against it when the email is unknown so that path costs roughly the
// same as a real password check.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword turns a plaintext password into a bcrypt hash. The salt
// is freshly random on every call, so repeated hashes of the same
// input differ.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
