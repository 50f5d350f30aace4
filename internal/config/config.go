package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/essenza-booking/internal/domain"
)

const (
	// StorageDriverPostgres хранение в PostgreSQL
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory хранение в памяти процесса (демо и локальный запуск)
	StorageDriverMemory = "memory"
)

// ErrInvalidConfig возвращается, если конфигурация противоречива
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Storage  StorageConfig   `toml:"storage"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	CORS     CORSConfig      `toml:"cors"`
	Admin    AdminConfig     `toml:"admin"`
	Services []ServiceConfig `toml:"services"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// BookingRateLimit заявок клиента в минуту с одного IP, 0 без ограничения
	BookingRateLimit int `toml:"booking_rate_limit"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig разрешенные источники для браузерного клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// AdminConfig доступ к административным маршрутам
// Пустой PasswordHash отключает проверку и допустим только для хранилища memory
type AdminConfig struct {
	PasswordHash string `toml:"password_hash"`
}

// ServiceConfig процедура каталога
type ServiceConfig struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
	Currency string  `toml:"currency"`
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен; уже заданные переменные окружения не перезаписываются
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	if err := envInt("HTTP_PORT", &c.Server.HTTPPort); err != nil {
		return err
	}
	envString("DB_HOST", &c.Database.Host)
	if err := envInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	envString("DB_USER", &c.Database.User)
	envString("DB_PASSWORD", &c.Database.Password)
	envString("DB_NAME", &c.Database.DBName)
	envString("STORAGE_DRIVER", &c.Storage.Driver)
	envString("LOG_LEVEL", &c.Logs.Level)
	envString("ADMIN_PASSWORD_HASH", &c.Admin.PasswordHash)
	return nil
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
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
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "essenza-booking"
	}
	for i := range c.Services {
		if c.Services[i].Currency == "" {
			c.Services[i].Currency = "PLN"
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.BookingRateLimit < 0 {
		return fmt.Errorf("%w: server.booking_rate_limit must not be negative", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host, user and dbname are required for postgres storage", ErrInvalidConfig)
		}
		if c.Admin.PasswordHash == "" {
			return fmt.Errorf("%w: admin.password_hash is required for postgres storage", ErrInvalidConfig)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	seen := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("%w: service id is required", ErrInvalidConfig)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidConfig, s.ID)
		}
		if s.Price < 0 {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
	}

	return nil
}

// DSN строка подключения для lib/pq в виде postgres:// URL
// Пользователь, пароль и имя базы экранируются
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Catalog каталог процедур из конфигурации; без секции [[services]] используется каталог по умолчанию
func (c *Config) Catalog() *domain.Catalog {
	if len(c.Services) == 0 {
		return domain.NewCatalog(domain.DefaultServices())
	}

	services := make([]domain.Service, len(c.Services))
	for i, s := range c.Services {
		services[i] = domain.Service{
			ID:       s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Currency: s.Currency,
		}
	}
	return domain.NewCatalog(services)
}
