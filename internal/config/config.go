package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port string `validate:"required,numeric"`

	StoreDriver string `validate:"oneof=file mongo"`
	StorePath   string `validate:"required"`
	MongoURI    string
	MongoDB     string

	MediaDriver string `validate:"oneof=cloudinary s3"`

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	S3Bucket        string
	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretAccess string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		StorePath:   getEnv("STORE_PATH", "users.json"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "enrollify"),
		MediaDriver: getEnv("MEDIA_DRIVER", "cloudinary"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		S3Bucket:        os.Getenv("AWS_S3_BUCKET"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		AWSAccessKeyID:  os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccess: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// Validate checks the config before the server boots. Driver-specific
// settings are only required for the selected driver.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	switch c.MediaDriver {
	case "cloudinary":
		if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
			return errors.New("cloudinary credentials are not configured")
		}
	case "s3":
		if c.S3Bucket == "" || c.AWSRegion == "" {
			return errors.New("s3 bucket and region are not configured")
		}
	}
	if c.StoreDriver == "mongo" && c.MongoURI == "" {
		return errors.New("MONGO_URI is required for the mongo store driver")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
