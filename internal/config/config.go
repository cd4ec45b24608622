package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dojodoskages/storefront/internal/models"
)

type Config struct {
	Port     int
	LogLevel string

	// bcrypt hash of the admin passphrase, never the passphrase itself
	AdminPasswordHash string
	JWTSecret         string

	// checkout handoff destination, digits only (country code included)
	WhatsAppNumber string
	StoreName      string

	KafkaAddress string

	ESURL      string
	ESUser     string
	ESPassword string

	SeedDemo bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		Port:              EnvIntDefault("PORT", 8080),
		LogLevel:          EnvDefault("LOG_LEVEL", "info"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		WhatsAppNumber:    os.Getenv("WHATSAPP_NUMBER"),
		StoreName:         EnvDefault("STORE_NAME", "DOJO DOS KAGES"),
		KafkaAddress:      os.Getenv("KAFKA_ADDRESS"),
		ESURL:             os.Getenv("ES_URL"),
		ESUser:            os.Getenv("ES_USER"),
		ESPassword:        os.Getenv("ES_PASSWORD"),
		SeedDemo:          EnvBoolDefault("SEED_DEMO", false),
	}

	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	return cfg, nil
}

// InitDB opens the in-memory database backing catalog and cart state.
// There is no durable storage: everything resets on process restart.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("cannot open in-memory db: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartLine{}); err != nil {
		return nil, fmt.Errorf("cannot migrate tables: %w", err)
	}
	return db, nil
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func EnvBoolDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
