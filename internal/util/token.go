package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	jwtSecret []byte
	jwtExpire = 24 * time.Hour
)

// InitToken 设置签名密钥和有效期，启动时调用一次
func InitToken(secret string, expireMin int) {
	jwtSecret = []byte(secret)
	if expireMin > 0 {
		jwtExpire = time.Duration(expireMin) * time.Minute
	}
}

type tokenClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken 为用户签发 HS256 令牌
func GenerateToken(userID uint) (string, error) {
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtExpire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken 验证令牌并返回其中的用户ID
func ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	return claims.UserID, nil
}
