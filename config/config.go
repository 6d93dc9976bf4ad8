package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env     string // APP_ENV, "development" or "production"
		Port    string // PORT
		BaseURL string // BASE_URL, public origin used to build file links
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	Upload UploadConfig
}

// UploadConfig is handed to the upload service at construction so it never
// reaches for process-wide state.
type UploadConfig struct {
	Dir         string // UPLOAD_DIR, root of the uploads tree
	BaseURL     string // public origin images are served from
	MaxSizeMB   int    // MAX_UPLOAD_SIZE_MB
	PublicPath  string // URL path prefix under BaseURL
	ImageSubdir string // subdirectory of Dir where images land
}

// MaxSizeBytes returns the configured limit in bytes.
func (u UploadConfig) MaxSizeBytes() int64 {
	return int64(u.MaxSizeMB) << 20
}

// ImageDir is the on-disk directory image uploads land in.
func (u UploadConfig) ImageDir() string {
	return filepath.Join(u.Dir, u.ImageSubdir)
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global config instance, set once by Initialize.
var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config
// struct. It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.BaseURL = getEnv("BASE_URL", "http://localhost:8080/")

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "abarhail_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Upload.Dir = getEnv("UPLOAD_DIR", "./uploads")
	cfg.Upload.BaseURL = cfg.App.BaseURL
	cfg.Upload.PublicPath = "uploads/images/"
	cfg.Upload.ImageSubdir = "images"

	var err error
	cfg.Upload.MaxSizeMB, err = getEnvAsInt("MAX_UPLOAD_SIZE_MB", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided
// configuration. It sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database. This
// should be called once at the start of the application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration. It fatals if the
// configuration has not been loaded yet so misuse surfaces at startup.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
