package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	// 每次调用都生成新盐，两次哈希不应相同
	hash2, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
	// 格式错误的哈希只返回 false，不 panic
	assert.False(t, CheckPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret123", ""))
}
