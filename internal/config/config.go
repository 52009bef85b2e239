package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI             string
	DBName               string
	JWTSecret            string
	AdminPassword        string
	AdminPasswordHash    string
	ConstructionPassword string
	UnderConstruction    bool
	SessionTTL           time.Duration
	CloudinaryURL        string
	CloudinaryFolder     string
	LoginRatePerMinute   int
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:             getEnvOrDefault("MONGO_URI", ""),
		DBName:               getEnvOrDefault("DB_NAME", "capimdaspampas"),
		JWTSecret:            getEnvOrDefault("JWT_SECRET", ""),
		AdminPassword:        getEnvOrDefault("ADMIN_PASSWORD", ""),
		AdminPasswordHash:    getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		ConstructionPassword: getEnvOrDefault("CONSTRUCTION_PASSWORD", ""),
		UnderConstruction:    getBoolEnv("SITE_UNDER_CONSTRUCTION", false),
		SessionTTL:           getDurationEnv("SESSION_TTL", 24, time.Hour),
		CloudinaryURL:        getEnvOrDefault("CLOUDINARY_URL", ""),
		CloudinaryFolder:     getEnvOrDefault("CLOUDINARY_FOLDER", "capim-das-pampas"),
		LoginRatePerMinute:   getIntEnv("LOGIN_RATE_PER_MINUTE", 10),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
