package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt 推荐的最小成本
	MinCost     = 12
	DefaultCost = 14
)

// HashPassword 使用 bcrypt 哈希密码
func HashPassword(password string, cost int) (string, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordStrength 验证密码强度
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		return errors.New("password must be at most 72 bytes")
	}
	return nil
}
