package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBURL          string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SaltRound        int
	BodyLimitMB      int
	CorsAllowOrigins string
	Timezone         string
	IntegrityCron    string
	LogLevel         string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "5000"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "prepcourse"),
		DBURL:          getEnv("DB_URL", ""),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SaltRound:        getEnvInt("SALT_ROUND", 12),
		BodyLimitMB:      getEnvInt("BODY_LIMIT_MB", 10),
		CorsAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Timezone:         getEnv("TIMEZONE", "Local"),
		IntegrityCron:    os.Getenv("INTEGRITY_CRON"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
	if _, set := os.LookupEnv("INTEGRITY_CRON"); !set {
		AppConfig.IntegrityCron = "0 3 * * *"
	}

	if level, err := log.ParseLevel(AppConfig.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown LOG_LEVEL, keeping info", "value", AppConfig.LogLevel)
	}

	if AppConfig.DBPassword == "" && AppConfig.DBDriver != "sqlite" && AppConfig.DBDriver != "mongo" {
		log.Warn("Warning: DB_PASSWORD is empty. Update it in your environment.")
	}
}

// Location resolves Timezone, falling back to the process zone.
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn("Unknown TIMEZONE, using local time", "value", c.Timezone, "err", err)
		return time.Local
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Error converting environment variable to int", "key", key, "err", err)
		return defaultValue
	}
	return intValue
}
