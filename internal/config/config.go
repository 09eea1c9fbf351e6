package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when DASHKIT_CONFIG is unset. A missing default
// file is not an error.
const DefaultPath = "config.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	Auth     AuthConfig     `yaml:"auth"`
	Cache    CacheConfig    `yaml:"cache"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	GinMode           string        `yaml:"gin_mode"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DSN builds the go-sql-driver/mysql connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type StoreConfig struct {
	// Driver is memory, file, sqlite or redis.
	Driver        string `yaml:"driver"`
	Path          string `yaml:"path"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	Prefix        string `yaml:"prefix"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	LoginLatency  time.Duration `yaml:"login_latency"`
	SignupLatency time.Duration `yaml:"signup_latency"`
	// LoginRate is attempts per second per client; LoginBurst the bucket size.
	LoginRate  float64 `yaml:"login_rate"`
	LoginBurst int     `yaml:"login_burst"`
	SeedDemo   bool    `yaml:"seed_demo_users"`
}

type CacheConfig struct {
	MemoSize     int `yaml:"memo_size"`
	ViewSessions int `yaml:"view_sessions"`
}

type FixturesConfig struct {
	// Path is an optional YAML overlay replacing the seeded collections.
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

type RefreshConfig struct {
	// Schedule is a cron spec for reloading database-backed collections.
	Schedule string `yaml:"schedule"`
}

type UploadsConfig struct {
	MaxFiles        int            `yaml:"max_files"`
	MaxFileSizeMB   int            `yaml:"max_file_size_mb"`
	AcceptedFormats []string       `yaml:"accepted_formats"`
	MaxFilesBy      map[string]int `yaml:"max_files_by_collection"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: DefaultLogConfig(),
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            3306,
			User:            "root",
			Name:            "dashkit",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 10 * time.Minute,
		},
		Store: StoreConfig{Driver: "memory", Path: "data/settings.json", RedisAddr: "127.0.0.1:6379", Prefix: "dashkit:"},
		Auth: AuthConfig{
			JWTSecret:     "dev-secret-change-me",
			TokenTTL:      24 * time.Hour,
			LoginLatency:  400 * time.Millisecond,
			SignupLatency: 800 * time.Millisecond,
			LoginRate:     1,
			LoginBurst:    5,
			SeedDemo:      true,
		},
		Cache:   CacheConfig{MemoSize: 256, ViewSessions: 1024},
		Refresh: RefreshConfig{Schedule: "@every 5m"},
		Uploads: UploadsConfig{
			MaxFiles:        10,
			MaxFileSizeMB:   10,
			AcceptedFormats: []string{"image/*", "application/pdf"},
			MaxFilesBy:      map[string]int{"items": 5},
		},
		CORS: CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
	}
}

// Path returns DASHKIT_CONFIG or DefaultPath.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("DASHKIT_CONFIG")); p != "" {
		return p
	}
	return DefaultPath
}

// Load layers defaults, the YAML file at path and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	LoadEnv().apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case "memory", "file", "sqlite", "redis":
	default:
		errs = append(errs, fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver))
	}
	if (c.Store.Driver == "file" || c.Store.Driver == "sqlite") && c.Store.Path == "" {
		errs = append(errs, errors.New("store.path: required for file and sqlite"))
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("auth.jwt_secret: must not be empty"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl: must be positive"))
	}
	if c.Uploads.MaxFiles <= 0 || c.Uploads.MaxFileSizeMB <= 0 {
		errs = append(errs, errors.New("uploads: max_files and max_file_size_mb must be positive"))
	}
	if c.Cache.MemoSize <= 0 || c.Cache.ViewSessions <= 0 {
		errs = append(errs, errors.New("cache: sizes must be positive"))
	}
	return errors.Join(errs...)
}
