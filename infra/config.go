package infra

import (
	"os"
	"strings"

	"github.com/spf13/cast"
)

const (
	DefaultPort          = "4000"
	DefaultJWTSecret     = "secret_ecom"
	DefaultUploadDir     = "upload/images"
	DefaultPublicBaseURL = "https://e-commerce-i9ps.onrender.com"
)

type LoggerConfig struct {
	Mode     string
	Filename string
}

// Config holds everything read from the environment at startup.
// It is built once in main and handed to constructors.
type Config struct {
	Port string

	MongoURI string

	DBName      string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBPort      string
	Env         string
	AutoMigrate bool

	JWTSecret       string
	PasswordHashing bool

	UploadDir     string
	PublicBaseURL string

	Logger LoggerConfig
}

func LoadConfig() *Config {
	return &Config{
		Port:            getenv("PORT", DefaultPort),
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          os.Getenv("DB_NAME"),
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBPort:          os.Getenv("DB_PORT"),
		Env:             os.Getenv("ENV"),
		AutoMigrate:     cast.ToBool(os.Getenv("AUTO_MIGRATE")),
		JWTSecret:       getenv("JWT_SECRET", DefaultJWTSecret),
		PasswordHashing: cast.ToBool(os.Getenv("PASSWORD_HASHING")),
		UploadDir:       getenv("UPLOAD_DIR", DefaultUploadDir),
		PublicBaseURL:   strings.TrimRight(getenv("PUBLIC_BASE_URL", DefaultPublicBaseURL), "/"),
		Logger: LoggerConfig{
			Mode:     getenv("LOG_MODE", "development"),
			Filename: os.Getenv("LOG_FILE"),
		},
	}
}

// UsesMongo reports whether the document store backend is selected.
func (c *Config) UsesMongo() bool {
	return c.MongoURI != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
