package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Generator Config
	CenterLat    float64 `env:"CENTER_LAT" envDefault:"-6.597" validate:"latitude"`
	CenterLng    float64 `env:"CENTER_LNG" envDefault:"106.799" validate:"longitude"`
	RadiusKM     float64 `env:"RADIUS_KM" envDefault:"15" validate:"gt=0,lt=5000"`
	NumRecords   int     `env:"NUM_RECORDS" envDefault:"150" validate:"gt=0"`
	Sampling     string  `env:"SAMPLING" envDefault:"square" validate:"oneof=square circle"`
	Profile      string  `env:"PROFILE" envDefault:"standard" validate:"oneof=standard coastal"`
	CoastlineLat float64 `env:"COASTLINE_LAT" envDefault:"-6.11" validate:"latitude"`
	RandomSeed   uint64  `env:"RANDOM_SEED" envDefault:"0"`

	// Output Config
	OutputFile string `env:"OUTPUT_FILE" envDefault:"dummy_data.sql" validate:"required"`
	OutputMode string `env:"OUTPUT_MODE" envDefault:"overwrite" validate:"oneof=overwrite append"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Database Config
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisQueueKey string `env:"REDIS_QUEUE_KEY" envDefault:"dummy_reports" validate:"required"`

	// HTTP Config
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		CenterLat:      getEnvAsFloat("CENTER_LAT", -6.597),
		CenterLng:      getEnvAsFloat("CENTER_LNG", 106.799),
		RadiusKM:       getEnvAsFloat("RADIUS_KM", 15),
		NumRecords:     getEnvAsInt("NUM_RECORDS", 150),
		Sampling:       getEnv("SAMPLING", "square"),
		Profile:        getEnv("PROFILE", "standard"),
		CoastlineLat:   getEnvAsFloat("COASTLINE_LAT", -6.11),
		RandomSeed:     getEnvAsUint("RANDOM_SEED", 0),
		OutputFile:     getEnv("OUTPUT_FILE", "dummy_data.sql"),
		OutputMode:     getEnv("OUTPUT_MODE", "overwrite"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		RedisQueueKey:  getEnv("REDIS_QUEUE_KEY", "dummy_reports"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
