package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPasswordHash("correct horse", hash) {
		t.Error("valid password rejected")
	}
	if CheckPasswordHash("wrong horse", hash) {
		t.Error("invalid password accepted")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	if err := ValidatePasswordStrength("short"); err == nil {
		t.Error("short password accepted")
	}
	if err := ValidatePasswordStrength("long enough"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
}
