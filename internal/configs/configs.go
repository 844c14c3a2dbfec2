package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	MongoUsername          string
	MongoPassword          string
	MongoCluster           string
	MongoDatabase          string
	GroqAPIKey             string
	GroqBaseURL            string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "5000")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		MongoUsername:          getEnv("MONGO_USERNAME", ""),
		MongoPassword:          getEnv("MONGO_PASSWORD", ""),
		MongoCluster:           getEnv("MONGO_CLUSTER", ""),
		MongoDatabase:          getEnv("MONGO_DATABASE", "pomoplanner"),
		GroqAPIKey:             getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:            getEnv("GROQ_BASE_URL", ""),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// MongoURI assembles the Atlas-style connection string from the
// username, password and cluster host.
func (c Config) MongoURI() string {
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.MongoUsername),
		url.QueryEscape(c.MongoPassword),
		c.MongoCluster,
	)
}

func validate(cfg Config) {
	if cfg.MongoUsername == "" {
		log.Fatal("MONGO_USERNAME must not be empty")
	}
	if cfg.MongoPassword == "" {
		log.Fatal("MONGO_PASSWORD must not be empty")
	}
	if cfg.MongoCluster == "" {
		log.Fatal("MONGO_CLUSTER must not be empty (e.g. cluster0.example.mongodb.net)")
	}
	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY must not be empty")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
