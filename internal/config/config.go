package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	User   UserConfig   `yaml:"user"`
	DB     DBConfig     `yaml:"db"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

type UserConfig struct {
	Email string `yaml:"email"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values win over file values.
func Load() (Config, error) {
	cfg := Config{
		User: UserConfig{
			Email: "default@localhost",
		},
		DB: DBConfig{
			Path: "jobtrail.db",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("JOBTRAIL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if email := os.Getenv("JOBTRAIL_USER_EMAIL"); email != "" {
		cfg.User.Email = email
	}
	if dbPath := os.Getenv("JOBTRAIL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if dir := os.Getenv("JOBTRAIL_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}
	if level := os.Getenv("JOBTRAIL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
