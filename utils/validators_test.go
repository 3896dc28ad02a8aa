package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "reader.one+tag@books.co.th", "A_b-c@example.org"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "plain", "@x.com", "a@", "a@x", "a b@x.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pass := GenerateTempPassword(8)
		assert.Len(t, pass, 8)
		for _, r := range pass {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
		}
		seen[pass] = true
	}
	assert.Greater(t, len(seen), 1, "temporary passwords should not repeat")
}
