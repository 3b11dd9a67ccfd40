// Package config загрузка конфигурации сервиса из TOML-файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN собирает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis (очередь напоминаний)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// BookingConfig продуктовые политики бронирования
type BookingConfig struct {
	// Шаг сетки слотов в минутах. Продуктовая политика, а не физическое ограничение.
	SlotStepMinutes int `toml:"slot_step_minutes"`
	// Время жизни hold в секундах
	HoldTTLSeconds int `toml:"hold_ttl_seconds"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из TOML-файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Booking.SlotStepMinutes == 0 {
		cfg.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if cfg.Booking.HoldTTLSeconds == 0 {
		cfg.Booking.HoldTTLSeconds = domain.DefaultHoldTTLSeconds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Booking.SlotStepMinutes < domain.MinSlotStepMinutes || c.Booking.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("config: booking.slot_step_minutes must be in [%d, %d]",
			domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if c.Booking.HoldTTLSeconds < domain.MinHoldTTLSeconds || c.Booking.HoldTTLSeconds > domain.MaxHoldTTLSeconds {
		return fmt.Errorf("config: booking.hold_ttl_seconds must be in [%d, %d]",
			domain.MinHoldTTLSeconds, domain.MaxHoldTTLSeconds)
	}
	return nil
}
