package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	AdminUsername   string
	AdminPassword   string
	CashierUsername string
	CashierPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment and defaults")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "pos.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          getDuration("JWT_TTL", 24*time.Hour),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		CashierUsername: getEnv("CASHIER_USERNAME", "cashier"),
		CashierPassword: getEnv("CASHIER_PASSWORD", "cashier123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using default", key, v)
		return fallback
	}
	return d
}
