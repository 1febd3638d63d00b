package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DBconfig хранит конфигурацию для БД
type DBconfig struct {
	URL string
}

type RESTconfig struct {
	PORT string
}

// AdminConfig — список валидных админских токенов (shared-secret модель).
type AdminConfig struct {
	Tokens []string
}

// CurrencyConfig — фиксированный курс пересчета AMD -> USD.
// Читается один раз на старте и не меняется.
type CurrencyConfig struct {
	USDRate float64
}

type UploadsConfig struct {
	Dir        string // каталог на диске
	PublicPath string // префикс URL, под которым каталог раздается
}

// RabbitMQConfig хранит конфигурацию для RabbitMQ.
// Пустой URL выключает публикацию событий.
type RabbitMQConfig struct {
	URL string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type StdoutLoggerConfig struct {
	Level string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	Admin        AdminConfig
	Currency     CurrencyConfig
	Uploads      UploadsConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLoggerConfig
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// .env не обязателен: в контейнере переменные приходят из окружения
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{
		AppName: "catalog-service",
	}

	// Читаем DATABASE URL
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Читаем конфигурацию для REST
	cfg.Rest.PORT = os.Getenv("PORT")
	if cfg.Rest.PORT == "" {
		cfg.Rest.PORT = "8080"
	}

	// Список админских токенов: ADMIN_TOKENS через запятую,
	// для совместимости поддерживается одиночный ADMIN_TOKEN
	rawTokens := os.Getenv("ADMIN_TOKENS")
	if rawTokens == "" {
		rawTokens = os.Getenv("ADMIN_TOKEN")
	}
	if rawTokens == "" {
		rawTokens = "dev123"
	}
	for _, t := range strings.Split(rawTokens, ",") {
		if t = strings.TrimSpace(t); t != "" {
			cfg.Admin.Tokens = append(cfg.Admin.Tokens, t)
		}
	}
	if len(cfg.Admin.Tokens) == 0 {
		return nil, fmt.Errorf("ADMIN_TOKENS must contain at least one non-empty token")
	}

	// Курс валюты
	rateStr := os.Getenv("CURRENCY_USD_RATE")
	if rateStr == "" {
		rateStr = "390.0"
	}
	cfg.Currency.USDRate, err = strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENCY_USD_RATE %q: %w", rateStr, err)
	}
	if cfg.Currency.USDRate <= 0 {
		return nil, fmt.Errorf("CURRENCY_USD_RATE must be positive, got %v", cfg.Currency.USDRate)
	}

	// Загрузки
	cfg.Uploads.Dir = os.Getenv("UPLOAD_DIR")
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	cfg.Uploads.PublicPath = "/uploads"

	// RabbitMQ опционален: без URL события просто не публикуются
	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")

	// Логирование
	cfg.StdoutLogger.Level = os.Getenv("LOG_LEVEL")
	if cfg.StdoutLogger.Level == "" {
		cfg.StdoutLogger.Level = "info"
	}

	cfg.FluentBit.Enabled = os.Getenv("FLUENTBIT_ENABLED") == "true"
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			cfg.FluentBit.Host = "127.0.0.1"
		}
		portStr := os.Getenv("FLUENTBIT_PORT")
		if portStr == "" {
			portStr = "24224"
		}
		cfg.FluentBit.Port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid FLUENTBIT_PORT %q: %w", portStr, err)
		}
		cfg.FluentBit.Level = os.Getenv("FLUENTBIT_LEVEL")
		if cfg.FluentBit.Level == "" {
			cfg.FluentBit.Level = "info"
		}
	}

	return cfg, nil
}
