package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// GenerateTempPassword returns a random lowercase-alphanumeric temporary
// password for the forgot-password flow.
func GenerateTempPassword(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	pass := make([]byte, length)

	for i := range pass {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		pass[i] = chars[num.Int64()]
	}

	return string(pass)
}
