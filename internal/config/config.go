package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Transactions TransactionsConfig `toml:"transactions"`
	Memory       MemoryConfig       `toml:"memory"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
// Driver = "memory" запускает сервис на in-memory хранилище (локальная разработка)
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
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

// TransactionsConfig настройки повторов сериализуемых транзакций
type TransactionsConfig struct {
	MaxRetries     int `toml:"max_retries"`
	RetryBackoffMs int `toml:"retry_backoff_ms"`
}

// MemoryConfig начальный каталог оборудования для driver = "memory"
type MemoryConfig struct {
	Equipment []EquipmentSeed `toml:"equipment"`
}

// EquipmentSeed описание единицы каталога
type EquipmentSeed struct {
	Name          string `toml:"name"`
	Type          string `toml:"type"`
	Location      string `toml:"location"`
	TotalQuantity int    `toml:"total_quantity"`
	IsAvailable   *bool  `toml:"is_available"`
}

// Available возвращает доступность оборудования (по умолчанию true)
func (s EquipmentSeed) Available() bool {
	return s.IsAvailable == nil || *s.IsAvailable
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "equipment_booking",
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
			ServiceName: "equipment_booking",
		},
		Transactions: TransactionsConfig{
			MaxRetries:     3,
			RetryBackoffMs: 20,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Transactions.MaxRetries < 0 {
		return fmt.Errorf("%w: transactions.max_retries must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Memory.Equipment))
	for _, seed := range c.Memory.Equipment {
		if seed.Name == "" || seed.TotalQuantity < 0 {
			return fmt.Errorf("%w: memory.equipment requires a name and a non-negative total_quantity", ErrInvalidConfig)
		}
		if _, ok := seen[seed.Name]; ok {
			return fmt.Errorf("%w: duplicate memory.equipment name %q", ErrInvalidConfig, seed.Name)
		}
		seen[seed.Name] = struct{}{}
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
