package helpers

import (
	"crypto/rand"
	"strings"
)

const usernameSuffixAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UsernameSuffixLen is how many random characters get appended when the
// base username is already taken.
const UsernameSuffixLen = 5

// UsernameFromEmail derives the base username from the email local-part.
func UsernameFromEmail(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}

// RandomSuffix returns n random alphanumeric characters.
func RandomSuffix(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = usernameSuffixAlphabet[int(b[i])%len(usernameSuffixAlphabet)]
	}
	return string(b), nil
}
