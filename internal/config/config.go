package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DataDir        string
	StaticDir      string
	AllowedOrigins []string

	// Remote mirror settings. Mirroring is disabled unless endpoint and both
	// keys are present.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
}

func Load() *Config {
	// load .env variables; a missing file is fine, everything has a default
	// or is optional
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./public"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "parking-backup"
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	return &Config{
		Port:           port,
		DataDir:        dataDir,
		StaticDir:      staticDir,
		AllowedOrigins: strings.Split(allowedOrigins, ","),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3Bucket:       bucket,
		S3Region:       region,
	}
}

// MirrorConfigured reports whether the remote trio needed for the backup
// mirror is present.
func (c *Config) MirrorConfigured() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
