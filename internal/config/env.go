package config

import (
	"os"
	"strconv"
	"strings"
)

// Env is the environment-variable layer of the configuration. Set
// values override the YAML file.
type Env struct {
	AppAddr    string
	GinMode    string
	LogLevel   string
	LogFormat  string
	DBEnabled  *bool
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	StoreDrv   string
	StorePath  string
	RedisAddr  string
	JWTSecret  string
	Fixtures   string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:    strings.TrimSpace(os.Getenv("APP_ADDR")),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:   strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFormat:  strings.TrimSpace(os.Getenv("LOG_FORMAT")),
		DBHost:     strings.TrimSpace(os.Getenv("DB_HOST")),
		DBUser:     strings.TrimSpace(os.Getenv("DB_USER")),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     strings.TrimSpace(os.Getenv("DB_NAME")),
		StoreDrv:   strings.TrimSpace(os.Getenv("STORE_DRIVER")),
		StorePath:  strings.TrimSpace(os.Getenv("STORE_PATH")),
		RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Fixtures:   strings.TrimSpace(os.Getenv("FIXTURES_PATH")),
	}
	if raw := strings.TrimSpace(os.Getenv("DB_ENABLED")); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			env.DBEnabled = &b
		}
	}
	if raw := strings.TrimSpace(os.Getenv("DB_PORT")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			env.DBPort = n
		}
	}
	return env
}

func (e Env) apply(cfg *Config) {
	setIf(&cfg.Server.Addr, e.AppAddr)
	setIf(&cfg.Server.GinMode, e.GinMode)
	setIf(&cfg.Log.Level, e.LogLevel)
	setIf(&cfg.Log.Format, e.LogFormat)
	if e.DBEnabled != nil {
		cfg.Database.Enabled = *e.DBEnabled
	}
	setIf(&cfg.Database.Host, e.DBHost)
	if e.DBPort > 0 {
		cfg.Database.Port = e.DBPort
	}
	setIf(&cfg.Database.User, e.DBUser)
	setIf(&cfg.Database.Password, e.DBPassword)
	setIf(&cfg.Database.Name, e.DBName)
	setIf(&cfg.Store.Driver, e.StoreDrv)
	setIf(&cfg.Store.Path, e.StorePath)
	setIf(&cfg.Store.RedisAddr, e.RedisAddr)
	setIf(&cfg.Auth.JWTSecret, e.JWTSecret)
	setIf(&cfg.Fixtures.Path, e.Fixtures)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
