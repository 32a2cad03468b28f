package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageFile  = "file"
	StorageMySQL = "mysql"
)

type Config struct {
	AppLang            string
	SupportedLanguages []string
	TranslationFolder  string
	StorageDriver      string
	DataFile           string
	LogLevel           string
	LogOutput          []string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppLang:            getEnv("APP_LANG", getEnv("LANG", "en")),
		SupportedLanguages: parseList(getEnv("SUPPORTED_LANGUAGES", "en,fr")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		DataFile:           getEnv("DATA_FILE", "data/taskbook.yaml"),
		LogLevel:           getEnv("LOG_LEVEL", "warn"),
		LogOutput:          parseList(getEnv("LOG_OUTPUT", "stderr")),
		DbHost:             getEnv("MYSQL_HOST", "127.0.0.1"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "taskbook"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "taskbook"),
		DbName:             getEnv("MYSQL_DATABASE", "taskbook"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
