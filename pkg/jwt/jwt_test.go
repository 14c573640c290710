package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "resell-dashboard", time.Hour)

	token, expiresAt, err := m.GenerateToken("owner", "api")
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt %v is in the past", expiresAt)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "owner" || claims.Scope != "api" || claims.ID == "" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejects(t *testing.T) {
	m := NewManager("key-one", "resell-dashboard", time.Hour)
	other := NewManager("key-two", "resell-dashboard", time.Hour)
	expired := NewManager("key-one", "resell-dashboard", time.Nanosecond)

	foreign, _, err := other.GenerateToken("owner", "api")
	if err != nil {
		t.Fatal(err)
	}
	stale, _, err := expired.GenerateToken("owner", "api")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Second)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"malformed", "not-a-token", ErrTokenMalformed},
		{"wrong key", foreign, ErrTokenInvalid},
		{"expired", stale, ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ParseToken(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("ParseToken() error = %v, want %v", err, tt.want)
			}
		})
	}
}
