// Package config loads the process configuration once at startup; the
// resolved value is passed by reference into every engine component.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port   int    `yaml:"port"`
		APIKey string `yaml:"api_key"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Backup struct {
		Enabled       bool   `yaml:"enabled"`
		IntervalHours int    `yaml:"interval_hours"`
		Path          string `yaml:"path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"backup"`

	Redis struct {
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Google struct {
		CredentialsPath   string `yaml:"credentials_path"`
		DefaultCalendarID string `yaml:"default_calendar_id"`
	} `yaml:"google"`

	Salon struct {
		Name         string `yaml:"name"`
		Phone        string `yaml:"phone"`
		Location     string `yaml:"location"`
		Timezone     string `yaml:"timezone"`
		OpeningHours string `yaml:"opening_hours"` // seed value; runtime value lives in the settings store
	} `yaml:"salon"`

	Booking struct {
		SlotMinutes            int `yaml:"slot_minutes"`
		WindowStartHour        int `yaml:"window_start_hour"`
		WindowEndHour          int `yaml:"window_end_hour"`
		DefaultDurationMinutes int `yaml:"default_duration_minutes"`
	} `yaml:"booking"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		Subject  string `yaml:"subject"`
		Template string `yaml:"template"`
	} `yaml:"smtp"`

	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		AdminChatID int64  `yaml:"admin_chat_id"`
	} `yaml:"telegram"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	StylistsConfigPath string `yaml:"stylists_config_path"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/salon.db"
	}
	if cfg.StylistsConfigPath == "" {
		cfg.StylistsConfigPath = "configs/stylists.yaml"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves the salon timezone, falling back to local time.
func (c *Config) Location() *time.Location {
	if c.Salon.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Salon.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// CacheTTL returns the redis cache TTL for busy-interval reads.
func (c *Config) CacheTTL() time.Duration {
	if c.Redis.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Redis.CacheTTLSeconds) * time.Second
}

// BackupInterval returns the backup period with a one-day default.
func (c *Config) BackupInterval() time.Duration {
	if c.Backup.IntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Backup.IntervalHours) * time.Hour
}

// BackupRetention returns the retention window with a two-week default.
func (c *Config) BackupRetention() time.Duration {
	if c.Backup.RetentionDays <= 0 {
		return 14 * 24 * time.Hour
	}
	return time.Duration(c.Backup.RetentionDays) * 24 * time.Hour
}
