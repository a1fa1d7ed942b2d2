package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	InitToken("test-secret", 60)

	token, err := GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateTokenInvalid(t *testing.T) {
	InitToken("test-secret", 60)

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	// 换了密钥之后旧令牌失效
	token, err := GenerateToken(7)
	assert.NoError(t, err)
	InitToken("another-secret", 60)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
