package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment     string        `mapstructure:"ENVIRONMENT"`
	Port            string        `mapstructure:"PORT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (real-time push); empty address selects the in-process hub
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Attachment storage
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	UploadBaseURL string `mapstructure:"UPLOAD_BASE_URL"`
	MaxUploadMB   int64  `mapstructure:"MAX_UPLOAD_MB"`

	// Calendar
	DefaultTimeZone string `mapstructure:"DEFAULT_TIME_ZONE"`

	// Reminder sweep
	ReminderInterval     time.Duration `mapstructure:"REMINDER_INTERVAL"`
	ReminderWindow       time.Duration `mapstructure:"REMINDER_WINDOW"`
	ReminderCycleTimeout time.Duration `mapstructure:"REMINDER_CYCLE_TIMEOUT"`

	// Rate limiting
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", 15*time.Second)

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "team_planner")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", 24*time.Hour)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Redis defaults
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	// Storage defaults
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_BASE_URL", "/uploads")
	v.SetDefault("MAX_UPLOAD_MB", 10)

	v.SetDefault("DEFAULT_TIME_ZONE", "Asia/Ho_Chi_Minh")

	// Reminder defaults
	v.SetDefault("REMINDER_INTERVAL", time.Hour)
	v.SetDefault("REMINDER_WINDOW", 24*time.Hour)
	v.SetDefault("REMINDER_CYCLE_TIMEOUT", 5*time.Minute)

	// Rate limit defaults
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && (config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.ReminderInterval <= 0 {
		return fmt.Errorf("REMINDER_INTERVAL must be positive")
	}

	if config.ReminderWindow <= 0 {
		return fmt.Errorf("REMINDER_WINDOW must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaxUploadBytes returns the attachment size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return c.MaxUploadMB << 20
}
