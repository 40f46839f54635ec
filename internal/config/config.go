package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
)

type Config struct {
	PORT               string
	LOG_LEVEL          string
	DB_HOST            string
	DB_PORT            string
	DB_USER            string
	DB_PASSWORD        string
	DB_NAME            string
	REDIS_ADDR         string
	REDIS_PASSWORD     string
	REDIS_DB           int
	ES_URL             string
	ES_USER            string
	ES_PASSWORD        string
	KAFKA_ADDRESS      string
	JWT_SECRET         string
	OTP_DEMO_MODE      bool
	TWILIO_ACCOUNT_SID string
	TWILIO_AUTH_TOKEN  string
	TWILIO_PHONE       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	demo := true
	if v := os.Getenv("OTP_DEMO_MODE"); v != "" {
		demo, _ = strconv.ParseBool(v)
	}

	config := &Config{
		PORT:               getenvDefault("PORT", "8080"),
		LOG_LEVEL:          os.Getenv("LOG_LEVEL"),
		DB_HOST:            os.Getenv("DB_HOST"),
		DB_PORT:            os.Getenv("DB_PORT"),
		DB_USER:            os.Getenv("DB_USER"),
		DB_PASSWORD:        os.Getenv("DB_PASSWORD"),
		DB_NAME:            os.Getenv("DB_NAME"),
		REDIS_ADDR:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		REDIS_PASSWORD:     os.Getenv("REDIS_PASSWORD"),
		REDIS_DB:           redisDB,
		ES_URL:             os.Getenv("ES_URL"),
		ES_USER:            os.Getenv("ES_USER"),
		ES_PASSWORD:        os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS:      os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:         os.Getenv("JWT_SECRET"),
		OTP_DEMO_MODE:      demo,
		TWILIO_ACCOUNT_SID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TWILIO_AUTH_TOKEN:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TWILIO_PHONE:       os.Getenv("TWILIO_PHONE_NUMBER"),
	}

	return config, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_HOST, cfg.DB_PORT, cfg.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Address{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RequestOrder{},
	)
}
