package settings

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	PORT                 string
	JWT_SECRET_KEY       string
	JWT_EXPIRATION_HOURS int
	MONGO_DB             string
	MONGO_ROOT_USERNAME  string
	MONGO_ROOT_PASSWORD  string
	MONGO_HOST           string
	MONGO_CONNECTION     string
	NATS_HOST            string
	AWS_BUCKET           string
	AWS_REGION           string
	ELS_HOST             string
	ELS_PASSWORD         string
	ELS_PORT             int
	ELS_USERNAME         string
	REDIS_HOST           string
	REDIS_PASSWORD       string
	CACHE_TTL_SECONDS    int
	APP_NAME             string
	CLIENT_URL           string
	NODE_ENV             string
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newSettings() *settings {
	return &settings{
		PORT:                 getEnv("PORT", "8080"),
		JWT_SECRET_KEY:       os.Getenv("JWT_SECRET_KEY"),
		JWT_EXPIRATION_HOURS: getEnvInt("JWT_EXPIRATION_HOURS", 72),
		MONGO_DB:             getEnv("MONGO_DB", "learning"),
		MONGO_ROOT_USERNAME:  os.Getenv("MONGO_ROOT_USERNAME"),
		MONGO_ROOT_PASSWORD:  os.Getenv("MONGO_ROOT_PASSWORD"),
		MONGO_HOST:           getEnv("MONGO_HOST", "localhost"),
		MONGO_CONNECTION:     getEnv("MONGO_CONNECTION", "mongodb"),
		NATS_HOST:            os.Getenv("NATS_HOST"),
		ELS_HOST:             os.Getenv("ELS_HOST"),
		ELS_PORT:             getEnvInt("ELS_PORT", 9200),
		ELS_PASSWORD:         os.Getenv("ELS_PASSWORD"),
		ELS_USERNAME:         os.Getenv("ELS_USERNAME"),
		AWS_BUCKET:           os.Getenv("AWS_BUCKET"),
		AWS_REGION:           getEnv("AWS_REGION", "us-east-1"),
		REDIS_HOST:           os.Getenv("REDIS_HOST"),
		REDIS_PASSWORD:       os.Getenv("REDIS_PASSWORD"),
		CACHE_TTL_SECONDS:    getEnvInt("CACHE_TTL_SECONDS", 300),
		APP_NAME:             getEnv("APP_NAME", "Learning"),
		CLIENT_URL:           getEnv("CLIENT_URL", "localhost:3000"),
		NODE_ENV:             getEnv("NODE_ENV", "dev"),
	}
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using environment")
		}
	}
}

func GetSettings() *settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}
