package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	Production bool

	// MySQL connection pieces (assembled by DSN)
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// External book catalog
	OpenLibraryURL string

	// Profile picture uploads
	UploadDir string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	production, _ := strconv.ParseBool(getEnv("PRODUCTION", "false"))

	return &Config{
		Port:       getEnv("PORT", "3000"),
		Production: production,

		DBHost:     getEnv("MYSQL_HOST", "localhost"),
		DBUser:     getEnv("MYSQL_USER", "root"),
		DBPassword: getEnv("MYSQL_PASSWORD", ""),
		DBName:     getEnv("MYSQL_DB", "moonlitpage"),
		DBPort:     getEnv("MYSQL_PORT", "3306"),

		JWTSecret: getEnv("JWT_SECRET", "moonlitsecret"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@moonlitpage.com"),
		FromName:     getEnv("FROM_NAME", "Moonlit Pages"),

		OpenLibraryURL: getEnv("OPENLIBRARY_URL", "https://openlibrary.org"),

		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
	}
}

// DSN assembles the MySQL connection string. Production connections
// must be encrypted.
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	if c.Production {
		dsn += "&tls=true"
	}
	return dsn
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
