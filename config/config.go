package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	ApiServer APIServerConfigs `toml:"api_server"`
	Database  DatabaseConfigs  `toml:"database"`
	Auth      AuthConfigs      `toml:"auth"`
	Session   SessionConfigs   `toml:"session"`
	Sync      SyncConfigs      `toml:"sync"`
}

type APIServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

func (c APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret  string       `toml:"token_secret"`
	AccessToken  TokenConfigs `toml:"access_token"`
	RefreshToken TokenConfigs `toml:"refresh_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

// SyncConfigs points at the sibling service exposing the clients resource.
type SyncConfigs struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Load builds the configuration from an optional TOML file pointed at by
// CONFIG_FILE, then overrides every value set in the environment.
func Load() (*Configs, error) {
	cfg := &Configs{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	cfg.Env = getEnv("ENV", defaultString(cfg.Env, "local"))
	cfg.ApiServer = APIServerConfigs{
		Host:         getEnv("HOST", cfg.ApiServer.Host),
		Port:         getEnv("PORT", defaultString(cfg.ApiServer.Port, "8080")),
		DefaultLimit: getEnvInt("API_DEFAULT_LIMIT", defaultInt(cfg.ApiServer.DefaultLimit, 20)),
		MaxLimit:     getEnvInt("API_MAX_LIMIT", defaultInt(cfg.ApiServer.MaxLimit, 50)),
	}
	cfg.Database = DatabaseConfigs{
		Host:     getEnv("MYSQL_HOST", defaultString(cfg.Database.Host, "localhost")),
		Port:     getEnv("MYSQL_PORT", defaultString(cfg.Database.Port, "3306")),
		Database: getEnv("MYSQL_DATABASE", defaultString(cfg.Database.Database, "stridelab")),
		User:     getEnv("MYSQL_USER", defaultString(cfg.Database.User, "stridelab")),
		Password: getEnv("MYSQL_PASSWORD", cfg.Database.Password),
	}
	cfg.Auth = AuthConfigs{
		TokenSecret: getEnv("TOKEN_SECRET", defaultString(cfg.Auth.TokenSecret, "token-secret")),
		AccessToken: TokenConfigs{
			Name:       "access_token",
			Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", defaultDuration(cfg.Auth.AccessToken.Expiration, time.Hour)),
		},
		RefreshToken: TokenConfigs{
			Name:       "refresh_token",
			Expiration: getEnvDuration("REFRESH_TOKEN_DURATION", defaultDuration(cfg.Auth.RefreshToken.Expiration, 14*24*time.Hour)),
		},
	}
	cfg.Session = SessionConfigs{
		Secret: getEnv("SESSION_SECRET", defaultString(cfg.Session.Secret, "session-secret")),
		Name:   getEnv("SESSION_NAME", defaultString(cfg.Session.Name, "session")),
	}
	cfg.Sync = SyncConfigs{
		URL:      getEnv("SYNC_URL", cfg.Sync.URL),
		Username: getEnv("SYNC_USERNAME", cfg.Sync.Username),
		Password: getEnv("SYNC_PASSWORD", cfg.Sync.Password),
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

func getEnvInt(key string, def int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return value
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return value
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func defaultInt(value, def int) int {
	if value == 0 {
		return def
	}
	return value
}

func defaultDuration(value, def time.Duration) time.Duration {
	if value == 0 {
		return def
	}
	return value
}
