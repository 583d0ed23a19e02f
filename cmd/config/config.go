package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/minhqn/price-intel/constant"
)

type Config struct {
	Environment string

	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration
		InternalKey  string
	}

	Database struct {
		Host            string
		Port            int
		User            string
		Password        string
		Name            string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		Enabled         bool
	}

	Redis struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	RabbitMQ struct {
		Host     string
		Port     int
		User     string
		Password string
		Enabled  bool
	}

	Collector struct {
		BaseURL     string
		NumProducts int
		Timeout     time.Duration
	}

	Oracle struct {
		BaseURL string
		Model   string
		APIKeys []string
		Timeout time.Duration
		Mode    constant.AnalysisMode
	}

	Batch struct {
		Delay     time.Duration
		ExportDir string
		JobTTL    time.Duration
	}
}

// Load reads the .env file (if present) and system environment variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Environment = getEnv("ENVIRONMENT", "development")

	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 120*time.Second)
	cfg.Server.IdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	cfg.Server.InternalKey = getEnv("INTERNAL_API_KEY", "")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 3306)
	cfg.Database.User = getEnv("DB_USER", "priceintel")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "priceintel")
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	cfg.Database.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	cfg.Database.Enabled = getEnvBool("DB_ENABLED", true)

	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.RabbitMQ.Host = getEnv("RABBITMQ_HOST", "localhost")
	cfg.RabbitMQ.Port = getEnvInt("RABBITMQ_PORT", 5672)
	cfg.RabbitMQ.User = getEnv("RABBITMQ_USER", "guest")
	cfg.RabbitMQ.Password = getEnv("RABBITMQ_PASSWORD", "guest")
	cfg.RabbitMQ.Enabled = getEnvBool("RABBITMQ_ENABLED", false)

	cfg.Collector.BaseURL = getEnv("COLLECTOR_BASE_URL", "http://localhost:8000")
	cfg.Collector.NumProducts = getEnvInt("COLLECTOR_NUM_PRODUCTS", constant.DefaultNumProducts)
	cfg.Collector.Timeout = getEnvDuration("COLLECTOR_TIMEOUT", 90*time.Second)

	cfg.Oracle.BaseURL = getEnv("ORACLE_BASE_URL", "https://api.groq.com/openai/v1")
	cfg.Oracle.Model = getEnv("ORACLE_MODEL", "meta-llama/llama-4-maverick-17b-128e-instruct")
	cfg.Oracle.APIKeys = collectKeys("ORACLE_API_KEY")
	cfg.Oracle.Timeout = getEnvDuration("ORACLE_TIMEOUT", 60*time.Second)
	cfg.Oracle.Mode = parseMode(getEnv("ANALYSIS_MODE", string(constant.ModeFlat)))

	cfg.Batch.Delay = getEnvDuration("BATCH_DELAY", 5*time.Second)
	cfg.Batch.ExportDir = getEnv("BATCH_EXPORT_DIR", "./exports")
	cfg.Batch.JobTTL = getEnvDuration("BATCH_JOB_TTL", 24*time.Hour)

	return cfg
}

// GetDSN returns the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// collectKeys gathers PREFIX, PREFIX_1, PREFIX_2, ... so several credentials
// can be configured side by side.
func collectKeys(prefix string) []string {
	keys := make([]string, 0, 4)
	if v := os.Getenv(prefix); v != "" {
		keys = append(keys, v)
	}
	for i := 1; ; i++ {
		v := os.Getenv(fmt.Sprintf("%s_%d", prefix, i))
		if v == "" {
			break
		}
		keys = append(keys, v)
	}
	return keys
}

func parseMode(raw string) constant.AnalysisMode {
	if strings.EqualFold(raw, string(constant.ModeGrouped)) {
		return constant.ModeGrouped
	}
	return constant.ModeFlat
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
