package util

import "golang.org/x/crypto/bcrypt"

// HashPassword 生成带盐的密码哈希，盐由 bcrypt 内嵌在输出里
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 校验密码，不匹配或哈希格式错误都返回 false
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
