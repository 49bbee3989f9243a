package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEntityID(t *testing.T) {
	id := GenerateEntityID("prod_", 12, false)
	assert.True(t, strings.HasPrefix(id, "prod_"))
	assert.Len(t, id, len("prod_")+12)
	assert.Equal(t, strings.ToLower(id), id)

	orderID := GenerateEntityID("ORD-", 8, true)
	assert.True(t, strings.HasPrefix(orderID, "ORD-"))
	assert.Len(t, orderID, len("ORD-")+8)
	assert.Equal(t, strings.ToUpper(orderID), orderID)
}

func TestGenerateEntityID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateEntityID("x_", 12, false)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateRandomStringWithLength(t *testing.T) {
	code := GenerateRandomStringWithLength(6)
	assert.Len(t, code, 6)
	// No ambiguous characters in promo codes.
	assert.NotContains(t, code, "O")
	assert.NotContains(t, code, "I")
	assert.NotContains(t, code, "0")
	assert.NotContains(t, code, "1")
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"awa@example.sn", "a.b+tag@mail.example.com"} {
		ok, err := ValidateEmail(email)
		assert.True(t, ok, email)
		assert.NoError(t, err)
	}
	for _, email := range []string{"", "plainaddress", "a@b", "@example.com"} {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, email)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+221771234567",
		"221781234567",
		"771234567",
		"33 823 45 67",
		"+221 77 123 45 67",
	}
	for _, phone := range valid {
		ok, err := ValidatePhone(phone)
		assert.True(t, ok, phone)
		assert.NoError(t, err)
	}

	invalid := []string{
		"",
		"123",
		"+33612345678", // French number
		"791234567",    // 79 is not a Senegalese prefix
		"7712345678",   // one digit too many
	}
	for _, phone := range invalid {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, phone)
	}
}
