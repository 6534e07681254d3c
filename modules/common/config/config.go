package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config - tüm ortam değişkenleri
type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// Gemini API
	GeminiAPIKey    string
	GeminiTextModel string
	GeminiImgModel  string

	// Store (redis | memory)
	StoreBackend  string
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Google Drive entegrasyonu (opsiyonel)
	DriveCredentialsFile string
	DriveFolderID        string

	// Giriş bilgileri
	AuthUsername string
	AuthPassword string
}

var globalConfig *Config

// LoadConfig - ortam değişkenlerini yükle
func LoadConfig() (*Config, error) {
	// .env dosyası varsa yükle
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️  .env file not found, using environment variables")
	}

	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	globalConfig = &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel: getEnv("GEMINI_TEXT_MODEL", "gemini-3-flash-preview"),
		GeminiImgModel:  getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),

		StoreBackend:  getEnv("STORE_BACKEND", "redis"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		DriveCredentialsFile: getEnv("DRIVE_CREDENTIALS_FILE", ""),
		DriveFolderID:        getEnv("DRIVE_FOLDER_ID", ""),

		AuthUsername: getEnv("AUTH_USERNAME", "safak"),
		AuthPassword: getEnv("AUTH_PASSWORD", "123654"),
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Info("✅ Configuration loaded successfully")
	log.Infof("   Store: %s", globalConfig.StoreBackend)
	log.Infof("   Gemini text model: %s", globalConfig.GeminiTextModel)
	log.Infof("   Gemini image model: %s", globalConfig.GeminiImgModel)

	return globalConfig, nil
}

// GetConfig - yüklenmiş konfigürasyonu getir
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - zorunlu ortam değişkenlerini doğrula
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.StoreBackend != "redis" && c.StoreBackend != "memory" {
		return fmt.Errorf("STORE_BACKEND must be 'redis' or 'memory', got %q", c.StoreBackend)
	}
	if c.StoreBackend == "redis" && c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required when STORE_BACKEND=redis")
	}
	return nil
}

// GetRedisAddr - host:port formatında Redis adresi
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
