package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wireless Keyboard", "wireless-keyboard"},
		{"  Trim Me  ", "trim-me"},
		{"Caffè Latte 250ml", "caff-latte-250ml"},
		{"a---b", "a-b"},
		{"UPPER", "upper"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestGenerateInvoiceNo(t *testing.T) {
	a := GenerateInvoiceNo()
	b := GenerateInvoiceNo()

	assert.True(t, strings.HasPrefix(a, "INV-"))
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU()
	assert.True(t, strings.HasPrefix(sku, "SKU-"))
	assert.Len(t, sku, 12)
}

func TestGenerateReturnNo(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateReturnNo(), "RET-"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
