// Package dbtest opens throwaway databases for package tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resell-dashboard/db"
	"resell-dashboard/pkg/config"
)

var memCounter atomic.Int64

// Open opens a migrated in-memory sqlite database private to the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", memCounter.Add(1)),
		LogLevel:    "silent",
		AutoMigrate: true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}
