// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"spendtrack/internal/blobstore"
	"spendtrack/pkg/db" // Import db package for its Config struct
)

// Blob store backend names accepted in BLOB_STORE.
const (
	BlobStoreLocal = "local"
	BlobStoreS3    = "s3"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config

	// BlobStore selects where profile pictures are kept: "local" or "s3".
	BlobStore string
	UploadDir string
	S3        blobstore.S3Config
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any required variable is missing or invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost" // Default to localhost for local development
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432" // Default PostgreSQL port
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user" // Default user for local development
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password" // Default password for local development
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "spendtrackdb" // Default database name for local development
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable" // Default to disable for local development
	}

	blobStore := os.Getenv("BLOB_STORE")
	if blobStore == "" {
		blobStore = BlobStoreLocal
	}
	if blobStore != BlobStoreLocal && blobStore != BlobStoreS3 {
		return nil, fmt.Errorf("invalid BLOB_STORE %q: must be %q or %q", blobStore, BlobStoreLocal, BlobStoreS3)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads" // Default directory for local blob storage
	}

	s3Cfg := blobstore.S3Config{
		Region:       os.Getenv("S3_REGION"),
		Bucket:       os.Getenv("S3_BUCKET"),
		AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		SecretKey:    os.Getenv("S3_SECRET_KEY"),
		BaseEndpoint: os.Getenv("S3_ENDPOINT"), // Optional, for MinIO-compatible stores
	}
	if blobStore == BlobStoreS3 && s3Cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when BLOB_STORE=s3")
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		BlobStore: blobStore,
		UploadDir: uploadDir,
		S3:        s3Cfg,
	}, nil
}
