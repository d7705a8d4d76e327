package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	// Backend klinik yang dikonsumsi portal
	APIBaseURL string
	WSBaseURL  string

	// Penyimpanan sesi: memory | redis | mariadb
	SessionStore string
	SessionTTL   time.Duration
	CookieSecure bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	LoginRatePerMinute int

	// Direktori sesi untuk CLI (pengganti localStorage di terminal)
	CLISessionDir string
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv membaca konfigurasi langsung dari environment tanpa cache.
func FromEnv() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:8000/api/v1"),
		WSBaseURL:          getEnv("WS_BASE_URL", "ws://localhost:8000/api/v1"),
		SessionStore:       getEnv("SESSION_STORE", "memory"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure:       getEnv("COOKIE_SECURE", "false") == "true",
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBName:             os.Getenv("DB_NAME"),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		CLISessionDir:      getEnv("CLI_SESSION_DIR", defaultCLISessionDir()),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func defaultCLISessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clinic-portal"
	}
	return filepath.Join(home, ".clinic-portal")
}
