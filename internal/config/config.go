package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "SPA"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database" envconfig:"DB"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Auth     AuthConfig     `toml:"auth"`
	Email    EmailConfig    `toml:"email"`
	SMS      SMSConfig      `toml:"sms"`
	Events   EventsConfig   `toml:"events"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	// TrustProxy разрешает брать адрес клиента из X-Forwarded-For
	TrustProxy bool `toml:"trust_proxy" envconfig:"TRUST_PROXY"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"NAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// BusinessConfig реквизиты салона для уведомлений и квитанций
type BusinessConfig struct {
	Name            string `toml:"name"`
	ShortName       string `toml:"short_name" envconfig:"SHORT_NAME"`
	Phone           string `toml:"phone"`
	Address         string `toml:"address"`
	Social          string `toml:"social"`
	TimeZone        string `toml:"time_zone" envconfig:"TIME_ZONE"`
	AdminEmail      string `toml:"admin_email" envconfig:"ADMIN_EMAIL"`
	ReferencePrefix string `toml:"reference_prefix" envconfig:"REFERENCE_PREFIX"`
}

type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret" envconfig:"JWT_SECRET"`
	SessionTTL   int    `toml:"session_ttl" envconfig:"SESSION_TTL"` // минуты
	CookieName   string `toml:"cookie_name" envconfig:"COOKIE_NAME"`
	CookieSecure bool   `toml:"cookie_secure" envconfig:"COOKIE_SECURE"`
}

// EmailConfig пустой api_key включает режим логирования вместо отправки
type EmailConfig struct {
	BaseURL string `toml:"base_url" envconfig:"BASE_URL"`
	APIKey  string `toml:"api_key" envconfig:"API_KEY"`
	From    string `toml:"from"`
	Timeout int    `toml:"timeout"` // секунды
}

// SMSConfig пустой api_key включает режим логирования вместо отправки
type SMSConfig struct {
	BaseURL  string `toml:"base_url" envconfig:"BASE_URL"`
	APIKey   string `toml:"api_key" envconfig:"API_KEY"`
	Username string `toml:"username"`
	SenderID string `toml:"sender_id" envconfig:"SENDER_ID"`
	Timeout  int    `toml:"timeout"` // секунды
}

type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// Default конфигурация по умолчанию, поверх нее читается файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "spa_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "spa_booking_service",
		},
		Business: BusinessConfig{
			Name:            "TIMO'S Makeup & Nails Spa",
			ShortName:       "TIMO'S Spa",
			TimeZone:        "Africa/Nairobi",
			ReferencePrefix: "TMS",
		},
		Auth: AuthConfig{
			SessionTTL: 480,
			CookieName: "spa_admin_session",
		},
		Email: EmailConfig{
			BaseURL: "https://api.resend.com",
			Timeout: 10,
		},
		SMS: SMSConfig{
			BaseURL: "https://api.africastalking.com",
			Timeout: 10,
		},
		Events: EventsConfig{
			Exchange: "spa.events",
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем файл (если есть), затем SPA_* переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port is out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		errs = append(errs, errors.New("database.host and database.dbname are required"))
	}
	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("auth.session_ttl must be positive"))
	}
	if _, err := time.LoadLocation(c.Business.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("business.time_zone is invalid: %w", err))
	}
	if c.Business.ReferencePrefix == "" {
		errs = append(errs, errors.New("business.reference_prefix is required"))
	}
	if c.Events.Enabled && c.Events.URL == "" {
		errs = append(errs, errors.New("events.url is required when events are enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Location часовой пояс салона
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Business.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SessionDuration время жизни сессии администратора
func (c AuthConfig) SessionDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Minute
}
