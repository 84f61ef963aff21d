package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DatabasePath    string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Quiz tuning
	QuestionsPerQuiz   int
	SecondsPerQuestion int
	PointsPerCorrect   int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:    mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:       getenvDefault("DATABASE_PATH", "codequiz.db"),
		JWTSecret:          mustGetenv("JWT_SECRET"),
		TokenTTL:           getenvDuration("TOKEN_TTL", 24*time.Hour),
		QuestionsPerQuiz:   getenvInt("QUESTIONS_PER_QUIZ", 10),
		SecondsPerQuestion: getenvInt("SECONDS_PER_QUESTION", 60),
		PointsPerCorrect:   getenvInt("POINTS_PER_CORRECT", 10),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
