package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port              string
	GinMode           string
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	JWTIssuer         string
	JWTExpiresMinutes int
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "projectuser"),
		DBPassword:        getEnv("DB_PASSWORD", "projectpassword"),
		DBName:            getEnv("DB_NAME", "project_management"),
		JWTSecret:         getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTIssuer:         getEnv("JWT_ISSUER", "project-task-api"),
		JWTExpiresMinutes: getEnvInt("JWT_EXPIRES_MINUTES", 60),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
