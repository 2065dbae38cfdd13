package hash

import "golang.org/x/crypto/bcrypt"

// Cost is pinned rather than taken from bcrypt.DefaultCost so a library
// upgrade cannot silently change the work factor of stored hashes.
const Cost = 10

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}

	return string(hashBytes), nil
}

// CheckPassword reports whether password reproduces hash. A mismatch is a
// normal false, never an error.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
