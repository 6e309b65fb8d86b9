package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// NotificationsConfig настройки fan-out уведомлений
// WebSocket-хаб раздаёт события подключенным клиентам UI;
// RelayURL (опционально) дублирует события во внешний сервис доставки
type NotificationsConfig struct {
	WebSocketEnabled bool   `toml:"websocket_enabled"`
	RelayURL         string `toml:"relay_url"`
	RelayTimeout     int    `toml:"relay_timeout"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "parish-booking-service",
			Path:        "/metrics",
		},
		Notifications: NotificationsConfig{
			WebSocketEnabled: true,
			RelayTimeout:     5,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return cfg, nil
}
