package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"resell-dashboard/db"
	"resell-dashboard/pkg/config"
	"resell-dashboard/pkg/logger"
	"resell-dashboard/pkg/security"
	"resell-dashboard/pkg/session"
	"resell-dashboard/redis"
	"resell-dashboard/router"
	"resell-dashboard/services"
)

// 构建时注入的变量
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("Reseller Dashboard\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-hash-password", "--hash-password":
			if err := hashPassword(os.Args[2:], os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "resell-dashboard: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "resell-dashboard: %v\n", err)
		os.Exit(1)
	}
}

// hashPassword prints a bcrypt hash for DASHBOARD_PASSWORD_HASH. The password
// is taken from args, or read as one line from in.
func hashPassword(args []string, in io.Reader, out io.Writer) error {
	var password string
	if len(args) > 0 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := security.HashPassword(password, security.MinCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting resell-dashboard",
		zap.String("version", Version),
		zap.String("mode", cfg.Server.Mode),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// 初始化数据库
	gdb, err := db.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	// 初始化 Redis 客户端
	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		if rdb, err = redis.New(cfg.Redis, log); err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
	}

	store, err := session.NewStore(cfg.Session, cfg.Redis, cfg.IsRelease())
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	engine, err := router.New(router.Deps{
		Config:   cfg,
		Log:      log,
		DB:       gdb,
		Redis:    rdb,
		Services: services.New(gdb, log),
		Sessions: store,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
