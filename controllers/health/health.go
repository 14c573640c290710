package health

import (
	"context"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resell-dashboard/db"
	"resell-dashboard/pkg/response"
	"resell-dashboard/redis"
)

const serviceName = "resell-dashboard"

// HealthController 健康检查控制器
type HealthController struct {
	db      *gorm.DB
	rdb     *goredis.Client
	version string
	started time.Time
}

// NewHealthController builds the health endpoints. rdb is nil when redis is disabled.
func NewHealthController(gdb *gorm.DB, rdb *goredis.Client, version string) *HealthController {
	return &HealthController{db: gdb, rdb: rdb, version: version, started: time.Now()}
}

// CheckHealth pings the database and, when configured, redis.
func (h *HealthController) CheckHealth(c *gin.Context) {
	checks := h.checks(c.Request.Context())
	for _, status := range checks {
		if status != "ok" {
			response.Error(c, response.UNAVAILABLE, "service not ready")
			return
		}
	}
	response.Success(c, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"version":   h.version,
		"checks":    checks,
		"timestamp": time.Now().Unix(),
	})
}

// CheckLiveness 存活性检查
func (h *HealthController) CheckLiveness(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "alive",
		"timestamp": time.Now().Unix(),
	})
}

func (h *HealthController) checks(ctx context.Context) map[string]string {
	checks := map[string]string{"database": "ok"}
	if err := db.HealthCheck(ctx, h.db); err != nil {
		checks["database"] = err.Error()
	}
	if h.rdb != nil {
		checks["redis"] = "ok"
		if err := redis.Ping(ctx, h.rdb); err != nil {
			checks["redis"] = err.Error()
		}
	}
	return checks
}

// GetSystemInfo 获取系统信息
func (h *HealthController) GetSystemInfo(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response.Success(c, gin.H{
		"service": gin.H{
			"name":    serviceName,
			"version": h.version,
			"mode":    gin.Mode(),
			"uptime":  time.Since(h.started).String(),
		},
		"system": gin.H{
			"go_version":    runtime.Version(),
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
		"memory": gin.H{
			"alloc_mb":       bToMb(m.Alloc),
			"total_alloc_mb": bToMb(m.TotalAlloc),
			"sys_mb":         bToMb(m.Sys),
			"num_gc":         m.NumGC,
		},
		"database":  db.Stats(h.db),
		"timestamp": time.Now().Unix(),
	})
}

// bToMb 字节转MB
func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
