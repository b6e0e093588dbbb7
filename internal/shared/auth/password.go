package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is bcrypt's work factor. Raising it later invalidates nothing:
// existing hashes keep verifying at the cost they were created with.
const hashCost = 12

// HashPassword hashes a plain text password for storage on the users row.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a login attempt against the stored hash.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
