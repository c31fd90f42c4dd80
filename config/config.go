package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	ApiServer ServerConfigs    `toml:"api_server"`
	Database  DatabaseConfigs  `toml:"database"`
	Selection SelectionConfigs `toml:"selection"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type SelectionConfigs struct {
	// MaxPickRetry bounds how many times a lost insert race is retried
	// before the request fails as transient.
	MaxPickRetry int `toml:"max_pick_retry"`

	// ArchiveBatchSize bounds the number of rows touched by a single bulk
	// archive statement.
	ArchiveBatchSize int `toml:"archive_batch_size"`
}

// Load reads the TOML file at path when it exists, then applies environment
// variable overrides and defaults.
func Load(path string) (Configs, error) {
	cfg := Configs{}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.ApiServer.Host = getEnv("API_HOST", cfg.ApiServer.Host)
	cfg.ApiServer.Port = getEnv("API_PORT", defaultString(cfg.ApiServer.Port, "8080"))
	cfg.Database.Host = getEnv("MYSQL_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("MYSQL_PORT", defaultString(cfg.Database.Port, "3306"))
	cfg.Database.Database = getEnv("MYSQL_DATABASE", cfg.Database.Database)
	cfg.Database.User = getEnv("MYSQL_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("MYSQL_PASSWORD", cfg.Database.Password)

	if cfg.Selection.MaxPickRetry <= 0 {
		cfg.Selection.MaxPickRetry = 3
	}
	if cfg.Selection.ArchiveBatchSize <= 0 {
		cfg.Selection.ArchiveBatchSize = 500
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
