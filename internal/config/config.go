package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NamingTimestamp = "timestamp"
	NamingUUID      = "uuid"
)

type Config struct {
	Server        ServerConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	UploadPath   string
	MaxFileSize  int64
	WriteTimeout time.Duration
	Naming       string
}

type ObservabilityConfig struct {
	TracingEnabled bool
	// LogLevel overrides the environment's default log level when set.
	LogLevel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Env:             getEnv("ENV", "development"),
			ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", "30s"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
		},
		Storage: StorageConfig{
			UploadPath:   getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			WriteTimeout: getEnvAsDuration("STORAGE_WRITE_TIMEOUT", "30s"),
			Naming:       getNaming("UPLOAD_NAMING"),
		},
		Observability: ObservabilityConfig{
			TracingEnabled: getEnvAsBool("TRACING_ENABLED", false),
			LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "")),
		},
	}
}

// IsDevelopment reports whether the server runs with development logging.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// BodyLimit is the largest request body the server accepts. It leaves room
// for the multipart envelope and the text fields around a maximum-size file.
func (c *Config) BodyLimit() int {
	return int(c.Storage.MaxFileSize) + 1<<20
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil && duration > 0 {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getNaming(key string) string {
	switch strings.ToLower(getEnv(key, NamingTimestamp)) {
	case NamingUUID:
		return NamingUUID
	default:
		return NamingTimestamp
	}
}
