package config

import (
	"os"
)

type Config struct {
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	SessionSecret     string
	SessionEncryptKey string
	GinMode           string
	StoragePort       string
}

func Load() *Config {
	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "intranet"),
		DBPassword:        getEnv("DB_PASSWORD", "intranet"),
		DBName:            getEnv("DB_NAME", "intranet"),
		SessionSecret:     getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionEncryptKey: getEnv("SESSION_ENCRYPT_KEY", "default-encrypt-key-change-me!!!"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		// Port of the external file-manager service post attachments would be
		// uploaded to. The integration itself is not implemented.
		StoragePort: getEnv("STORAGE_PORT", "9011"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
