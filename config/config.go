package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr  string
	MysqlDSN    string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins string
	LogLevel    string
}

// Load reads configuration from the environment, falling back to
// development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("UNISON")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("mysql_dsn", "root:root@tcp(localhost:3306)/unison?charset=utf8mb4&parseTime=True&loc=UTC")
	v.SetDefault("jwt_secret", "unison-secret-key-change-in-production")
	v.SetDefault("token_ttl", "168h")
	v.SetDefault("cors_origins", "http://localhost:5173,http://localhost:3000,tauri://localhost")
	v.SetDefault("log_level", "info")

	ttl, err := time.ParseDuration(v.GetString("token_ttl"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:  ":" + v.GetString("port"),
		MysqlDSN:    v.GetString("mysql_dsn"),
		JWTSecret:   v.GetString("jwt_secret"),
		TokenTTL:    ttl,
		CORSOrigins: v.GetString("cors_origins"),
		LogLevel:    v.GetString("log_level"),
	}, nil
}
