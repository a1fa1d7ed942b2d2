package service

import (
	"asset-inventory-system/internal/model"
	"asset-inventory-system/internal/util"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// 邮箱格式只在开头锚定，保持和原系统一致的宽松检查
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// RegisterUser 注册新用户。校验按固定顺序 fail-fast：
// 字段齐全 -> 域名后缀 -> 邮箱格式 -> 两次密码一致 -> 密码长度，
// 第一条不通过就直接返回，不继续往下查。
func RegisterUser(db *gorm.DB, allowedDomain, email, password, confirmPassword string) (*model.User, error) {
	if email == "" || password == "" || confirmPassword == "" {
		return nil, newValidationError("Please fill in all fields.")
	}
	if !strings.HasSuffix(email, "@"+allowedDomain) {
		return nil, newValidationError("Only @" + allowedDomain + " email addresses allowed.")
	}
	if !emailPattern.MatchString(email) {
		return nil, newValidationError("Invalid email format.")
	}
	if password != confirmPassword {
		return nil, newValidationError("Passwords do not match.")
	}
	if len(password) < 6 {
		return nil, newValidationError("Password must be at least 6 characters long.")
	}

	// 邮箱唯一性检查
	var existing model.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashed,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser 按邮箱精确匹配查找用户并验证密码。
// "邮箱不存在"和"密码错误"统一返回 ErrInvalidCredentials。
func AuthenticateUser(db *gorm.DB, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	var user model.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, result.Error
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
