package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9860056658", NormalizePhone("+977-9860056658"))
	assert.Equal(t, "9860056658", NormalizePhone("977 9860056658"))
	assert.Equal(t, "9860056658", NormalizePhone("09860056658"))
	assert.Equal(t, "9860056658", NormalizePhone("98600 56658"))
}

func TestPhoneMatches(t *testing.T) {
	// The stored number carries the country prefix, the user types the bare
	// number. This is the tracking-page case.
	assert.True(t, PhoneMatches("+977-9860056658", "9860056658"))
	assert.True(t, PhoneMatches("9860056658", "+9779860056658"))
	assert.True(t, PhoneMatches("0 98 600 56658", "9860056658"))

	assert.False(t, PhoneMatches("+977-9860056658", "9811111111"))
	assert.False(t, PhoneMatches("", "9860056658"))
	assert.False(t, PhoneMatches("9860056658", ""))
}
