package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config — конфигурация сервиса, загружается из config.toml.
// Секреты (пароль БД, ключ платёжного провайдера) берутся из окружения.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Identity IdentityConfig `toml:"identity"`
	Payments PaymentsConfig `toml:"payments"`
	Mailer   MailerConfig   `toml:"mailer"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN формирует строку подключения для lib/pq.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type IdentityConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type PaymentsConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
	SecretKey string `toml:"-"`
}

type MailerConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig — резервные рабочие окна на случай, когда для дня
// не задано расписание. Часы в диапазоне 0..23.
type BookingConfig struct {
	PublicFallbackOpenHour     int `toml:"public_fallback_open_hour"`
	PublicFallbackCloseHour    int `toml:"public_fallback_close_hour"`
	DashboardFallbackOpenHour  int `toml:"dashboard_fallback_open_hour"`
	DashboardFallbackCloseHour int `toml:"dashboard_fallback_close_hour"`
}

// Load читает конфигурацию из TOML-файла и дополняет её секретами
// из переменных окружения (.env подхватывается, если присутствует).
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения контейнера
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Payments.SecretKey = os.Getenv("PAYMENTS_SECRET_KEY")

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Identity.URL == "" {
		return fmt.Errorf("identity.url is required")
	}
	if c.Payments.URL == "" {
		return fmt.Errorf("payments.url is required")
	}
	if !validHourPair(c.Booking.PublicFallbackOpenHour, c.Booking.PublicFallbackCloseHour) {
		return fmt.Errorf("booking: invalid public fallback window %d..%d",
			c.Booking.PublicFallbackOpenHour, c.Booking.PublicFallbackCloseHour)
	}
	if !validHourPair(c.Booking.DashboardFallbackOpenHour, c.Booking.DashboardFallbackCloseHour) {
		return fmt.Errorf("booking: invalid dashboard fallback window %d..%d",
			c.Booking.DashboardFallbackOpenHour, c.Booking.DashboardFallbackCloseHour)
	}
	return nil
}

func validHourPair(open, close int) bool {
	return open >= 0 && close <= 24 && open < close
}
