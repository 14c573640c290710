package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the dialect and tunes the pool.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // postgres, mysql or sqlite
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
	SlowThreshold   time.Duration `yaml:"slow_threshold"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

// RedisConfig is only used when Enabled is set.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Addr         string        `yaml:"addr"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// SessionConfig configures the flash/login session.
type SessionConfig struct {
	Name   string `yaml:"name"`
	Secret string `yaml:"secret"`
	MaxAge int    `yaml:"max_age"` // seconds
	Store  string `yaml:"store"`   // cookie or redis
}

// AuthConfig enables the login screen when PasswordHash is set.
type AuthConfig struct {
	PasswordHash  string        `yaml:"password_hash"` // bcrypt
	JWTSigningKey string        `yaml:"jwt_signing_key"`
	JWTExpiry     time.Duration `yaml:"jwt_expiry"`
	JWTIssuer     string        `yaml:"jwt_issuer"`
}

// Enabled reports whether a dashboard password is configured.
func (a AuthConfig) Enabled() bool {
	return a.PasswordHash != ""
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json 或 console
	Output string `yaml:"output"` // stdout, stderr or a file path
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	RateLimit       int  `yaml:"rate_limit"` // 每分钟请求数
	EnableRateLimit bool `yaml:"enable_rate_limit"`
}

var (
	validModes   = []string{"debug", "release", "test"}
	validDrivers = []string{"postgres", "mysql", "sqlite"}
)

// Load builds the config from defaults, then the YAML file, then the environment.
func Load() (*Config, error) {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{}
	setDefaults(config)

	if err := loadFromFile(config); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// loadEnv 加载环境变量文件
func loadEnv() error {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFiles := []string{
		".env",
		fmt.Sprintf(".env.%s", env),
		".env.local",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return err
			}
		}
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(config *Config) {
	config.Server.Port = "8000"
	config.Server.Mode = "release"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.ShutdownTimeout = 30 * time.Second

	config.Database.Driver = "postgres"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.LogLevel = "warn"
	config.Database.SlowThreshold = 200 * time.Millisecond
	config.Database.AutoMigrate = true

	config.Redis.Addr = "localhost:6379"
	config.Redis.PoolSize = 10
	config.Redis.DialTimeout = 5 * time.Second
	config.Redis.ReadTimeout = 3 * time.Second
	config.Redis.WriteTimeout = 3 * time.Second

	config.Session.Name = "resell_session"
	config.Session.MaxAge = 7 * 24 * 3600
	config.Session.Store = "cookie"

	config.Auth.JWTExpiry = 24 * time.Hour
	config.Auth.JWTIssuer = "resell-dashboard"

	config.Log.Level = "info"
	config.Log.Format = "json"
	config.Log.Output = "stdout"

	config.Security.RateLimit = 600
	config.Security.EnableRateLimit = true
}

// loadFromFile 从配置文件加载
func loadFromFile(config *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// loadFromEnv 从环境变量加载
func loadFromEnv(config *Config) {
	setString(&config.Server.Port, "PORT", "SERVER_PORT")
	setString(&config.Server.Mode, "GIN_MODE")

	setString(&config.Database.Driver, "DB_DRIVER")
	setString(&config.Database.DSN, "DATABASE_URL", "Mysql", "MYSQL_DSN")
	setString(&config.Database.LogLevel, "DB_LOG_LEVEL")
	setInt(&config.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&config.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setBool(&config.Database.AutoMigrate, "DB_AUTO_MIGRATE")

	setBool(&config.Redis.Enabled, "REDIS_ENABLED")
	setString(&config.Redis.Addr, "REDIS_ADDR")
	setString(&config.Redis.Username, "REDIS_USERNAME")
	setString(&config.Redis.Password, "REDIS_PASSWORD")
	setInt(&config.Redis.DB, "REDIS_DB")

	setString(&config.Session.Secret, "SESSION_SECRET", "FLASK_SECRET_KEY")
	setString(&config.Session.Store, "SESSION_STORE")

	setString(&config.Auth.PasswordHash, "DASHBOARD_PASSWORD_HASH")
	setString(&config.Auth.JWTSigningKey, "JWT_SIGNING_KEY")

	setString(&config.Log.Level, "LOG_LEVEL")
	setString(&config.Log.Format, "LOG_FORMAT")
	setString(&config.Log.Output, "LOG_OUTPUT")

	setInt(&config.Security.RateLimit, "RATE_LIMIT")
	setBool(&config.Security.EnableRateLimit, "ENABLE_RATE_LIMIT")
}

// setString takes the first non-empty variable from keys.
func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if !contains(validDrivers, config.Database.Driver) {
		return fmt.Errorf("invalid database driver: %s", config.Database.Driver)
	}
	if config.Database.DSN == "" {
		return errors.New("database DSN is required")
	}

	if _, err := strconv.Atoi(strings.TrimPrefix(config.Server.Port, ":")); err != nil {
		return fmt.Errorf("invalid server port: %s", config.Server.Port)
	}
	if !contains(validModes, config.Server.Mode) {
		return fmt.Errorf("invalid server mode: %s", config.Server.Mode)
	}

	switch config.Session.Store {
	case "cookie":
	case "redis":
		if !config.Redis.Enabled {
			return errors.New("session store redis requires redis.enabled")
		}
	default:
		return fmt.Errorf("invalid session store: %s", config.Session.Store)
	}
	if config.Server.Mode == "release" && len(config.Session.Secret) < 16 {
		return errors.New("session secret must be at least 16 characters in release mode")
	}

	if config.Auth.Enabled() && config.Auth.JWTSigningKey == "" {
		return errors.New("JWT signing key is required when the dashboard password is set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(s.Port, ":")
}

// IsRelease 判断是否为生产环境
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
