package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type DatabaseConfig struct {
	URI     string
	Name    string
	Timeout int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "travel-booking")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_DB", "travel")
	viper.SetDefault("MONGO_TIMEOUT_SECONDS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 720) // 30 days
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("UPLOAD_MAX_MB", 5)

	// .env is optional; environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("BASE_URL"),
		},
		Database: DatabaseConfig{
			URI:     viper.GetString("MONGO_URI"),
			Name:    viper.GetString("MONGO_DB"),
			Timeout: viper.GetInt("MONGO_TIMEOUT_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Upload: UploadConfig{
			Dir:       viper.GetString("UPLOAD_DIR"),
			MaxSizeMB: viper.GetInt64("UPLOAD_MAX_MB"),
		},
	}

	if config.App.BaseURL == "" {
		config.App.BaseURL = fmt.Sprintf("http://localhost:%s", config.App.Port)
	}

	// Fatal startup conditions
	if config.Database.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}
