package logger

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"resell-dashboard/pkg/config"
)

func TestNew(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewGormLogger(t *testing.T) {
	if l := NewGormLogger(zap.NewNop(), "info", time.Second); l == nil {
		t.Fatal("expected a gorm logger")
	}
}
