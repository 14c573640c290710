package main

import (
	"bytes"
	"strings"
	"testing"

	"resell-dashboard/pkg/security"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr bool
	}{
		{"from argument", []string{"correct horse"}, "", false},
		{"from stdin", nil, "correct horse\n", false},
		{"too short", []string{"short"}, "", true},
		{"empty stdin", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := hashPassword(tt.args, strings.NewReader(tt.stdin), &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("hashPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			hash := strings.TrimSpace(out.String())
			if !security.CheckPasswordHash("correct horse", hash) {
				t.Errorf("printed hash %q does not match the password", hash)
			}
		})
	}
}
