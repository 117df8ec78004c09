package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plain text password using bcrypt.
// DefaultCost (10) matches what the rest of the platform expects.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword checks a plain password against a bcrypt hash. A nil
// error means match; bcrypt.ErrMismatchedHashAndPassword means wrong
// password; anything else is an internal comparison failure.
func ComparePassword(hash string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
