package config

import (
	"log"
	"os"

	"github.com/google/uuid"
)

type Config struct {
	Port          string
	DBDSN         string
	JWTSecret     string
	AdminPassword string
	LogFile       string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "webshop.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Ephemeral secret: tokens die with the process. Set JWT_SECRET for anything real.
		secret = uuid.NewString()
		log.Printf("[warn] JWT_SECRET not set; issued tokens will not survive a restart")
	}
	admin := os.Getenv("ADMIN_PASSWORD")
	if admin == "" {
		admin = "admin"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, AdminPassword: admin, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
