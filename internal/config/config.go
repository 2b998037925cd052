package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string
	CORSOrigins string
	LogToDB     bool

	// Timezone is the zone schedule wall-clock times and display strings are evaluated in.
	Timezone string
	Location *time.Location

	SnapshotTemplateID string // template used when rendering scheduled reports
	RenderRowLimit     int
	ProjectorWorkers   int

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	TemplateCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		MongoURI:           v.GetString("MONGO_URI"),
		DBName:             v.GetString("DB_NAME"),
		SkipAuth:           v.GetBool("SKIP_AUTH"),
		Environment:        v.GetString("ENVIRONMENT"),
		AppId:              v.GetString("APP_ID"),
		CORSOrigins:        v.GetString("CORS_ORIGINS"),
		LogToDB:            v.GetBool("LOG_TO_DB"),
		Timezone:           v.GetString("TIMEZONE"),
		SnapshotTemplateID: v.GetString("SNAPSHOT_TEMPLATE_ID"),
		RenderRowLimit:     v.GetInt("RENDER_ROW_LIMIT"),
		ProjectorWorkers:   v.GetInt("PROJECTOR_WORKERS"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		TemplateCacheTTL:   v.GetDuration("TEMPLATE_CACHE_TTL"),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.RenderRowLimit < 1 {
		return nil, fmt.Errorf("RENDER_ROW_LIMIT must be positive, got %d", cfg.RenderRowLimit)
	}
	if cfg.ProjectorWorkers < 1 {
		cfg.ProjectorWorkers = 1
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_SECRET", "secret")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "hrms")
	v.SetDefault("SKIP_AUTH", false)
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("APP_ID", "go-hrms")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	v.SetDefault("LOG_TO_DB", true)
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("SNAPSHOT_TEMPLATE_ID", "")
	v.SetDefault("RENDER_ROW_LIMIT", 1000)
	v.SetDefault("PROJECTOR_WORKERS", 8)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TEMPLATE_CACHE_TTL", 10*time.Minute)
}

// IsProduction reports whether the service runs with production logging and defaults.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
