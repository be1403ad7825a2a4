package dto

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	ListenAddr string
	AMQPURL    string
}

func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warnf("No .env file loaded: %v", err)
	}

	return Config{
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "openpolls"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		ListenAddr: envOrDefault("LISTEN_ADDR", ":8080"),
		AMQPURL:    os.Getenv("AMQP_URL"),
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
