package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"resell-dashboard/db/dbtest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(dbtest.Open(t), zap.NewNop())
}

var ctx = context.Background()
