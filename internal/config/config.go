package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Sheet    SheetConfig    `toml:"sheetstore"`
	Line     LineConfig     `toml:"line"`
	Sessions SessionsConfig `toml:"sessions"`
	Redis    RedisConfig    `toml:"redis"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig describes the booking grid and shop schedule.
type SalonConfig struct {
	OpenTime            string `toml:"open_time"`      // first slot of the day, "10:00"
	LastSlotTime        string `toml:"last_slot_time"` // last slot of the day, "20:00"
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
	ClosedWeekday       string `toml:"closed_weekday"` // weekly closure day, e.g. "Wednesday"
	CatalogFile         string `toml:"catalog_file"`
	DefaultUserName     string `toml:"default_user_name"` // display name when LINE login is unavailable
}

// StorageConfig selects the appointment store backend.
type StorageConfig struct {
	Backend string `toml:"backend"` // "sheets" or "postgres"
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds a lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SheetConfig points at the Apps Script spreadsheet endpoint.
// An empty URL leaves the store unconfigured: fetches return nothing and
// creates are simulated, mirroring the widget's standalone mode.
type SheetConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type LineConfig struct {
	Enabled    bool   `toml:"enabled"`
	ProfileURL string `toml:"profile_url"`
	Timeout    int    `toml:"timeout"`
}

type SessionsConfig struct {
	Backend    string `toml:"backend"` // "memory" or "redis"
	TTLMinutes int    `toml:"ttl_minutes"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if cfg.Storage.Backend != "sheets" && cfg.Storage.Backend != "postgres" {
		return nil, fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Sessions.Backend != "memory" && cfg.Sessions.Backend != "redis" {
		return nil, fmt.Errorf("config: unknown sessions backend %q", cfg.Sessions.Backend)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-service"
	}
	if c.Salon.OpenTime == "" {
		c.Salon.OpenTime = "10:00"
	}
	if c.Salon.LastSlotTime == "" {
		c.Salon.LastSlotTime = "20:00"
	}
	if c.Salon.SlotIntervalMinutes == 0 {
		c.Salon.SlotIntervalMinutes = 30
	}
	if c.Salon.ClosedWeekday == "" {
		c.Salon.ClosedWeekday = "Wednesday"
	}
	if c.Salon.CatalogFile == "" {
		c.Salon.CatalogFile = "catalog.toml"
	}
	if c.Salon.DefaultUserName == "" {
		c.Salon.DefaultUserName = "貴賓"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "sheets"
	}
	if c.Sheet.Timeout == 0 {
		c.Sheet.Timeout = 10
	}
	if c.Line.ProfileURL == "" {
		c.Line.ProfileURL = "https://api.line.me/v2/profile"
	}
	if c.Line.Timeout == 0 {
		c.Line.Timeout = 5
	}
	if c.Sessions.Backend == "" {
		c.Sessions.Backend = "memory"
	}
	if c.Sessions.TTLMinutes == 0 {
		c.Sessions.TTLMinutes = 60
	}
}
