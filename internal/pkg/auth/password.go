package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost factor the stored hashes were produced with.
const BcryptCost = 10

// MinPasswordLength applies to both self-service reset and forced change.
const MinPasswordLength = 6

// HashPassword hashes a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a stored hash against a candidate password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
