// Package config loads server settings from the environment and the
// backdrop tuning from YAML.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Server holds the HTTP server settings.
type Server struct {
	Port           int
	StaticDir      string
	DBPath         string
	ResumePath     string
	DiscordWebhook string
	AdminUsername  string
	AdminPassword  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailTo   string
}

// LoadEnv reads .env if present. A missing file is not an error; the
// process environment always wins over it.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file loaded, using process environment")
		return
	}
	log.Println("Successfully loaded environment variables")
}

// FromEnv builds the server config from environment variables.
func FromEnv() (Server, error) {
	c := Server{
		Port:           9080,
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		DBPath:         getEnv("DB_PATH", "portfolio.db"),
		ResumePath:     os.Getenv("RESUME_PATH"),
		DiscordWebhook: os.Getenv("DISCORD_WEBHOOK"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailTo:   os.Getenv("TO_EMAIL"),
	}
	if p, err := GetEnvVariable("PORT"); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 || n > 65535 {
			return c, fmt.Errorf("invalid PORT %q", p)
		}
		c.Port = n
	}
	return c, nil
}

// GetEnvVariable returns a required variable or an error naming it.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

func getEnv(key, def string) string {
	if v, err := GetEnvVariable(key); err == nil {
		return v
	}
	return def
}
