package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	SMS    SMSConfig
	Import ImportConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds admin session signing settings. AdminPasswordHash is a
// bcrypt hash of the single admin password.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
}

// S3Config holds AWS S3 settings for raffle image uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SMSConfig holds outbound SMS settings.
type SMSConfig struct {
	Provider    string `mapstructure:"provider"`
	APIURL      string `mapstructure:"api_url"`
	APIKey      string `mapstructure:"api_key"`
	Sender      string `mapstructure:"sender"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	Concurrency int    `mapstructure:"concurrency"`
}

// ImportConfig holds reconciliation and allocation parameters.
type ImportConfig struct {
	MaxQty           int   `mapstructure:"max_qty"`
	MaxMultiplier    int64 `mapstructure:"max_multiplier"`
	BatchSize        int   `mapstructure:"batch_size"`
	BatchTimeoutSecs int   `mapstructure:"batch_timeout_secs"`
	PreviewLimit     int   `mapstructure:"preview_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the RAFFLE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RAFFLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "raffle")
	v.SetDefault("db.password", "raffle_secret")
	v.SetDefault("db.name", "raffle_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "raffle-app")
	v.SetDefault("jwt.admin_password_hash", "")

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "raffle-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// SMS defaults
	v.SetDefault("sms.provider", "noop")
	v.SetDefault("sms.api_url", "")
	v.SetDefault("sms.api_key", "")
	v.SetDefault("sms.sender", "MB")
	v.SetDefault("sms.timeout_secs", 15)
	v.SetDefault("sms.concurrency", 5)

	// Import defaults
	v.SetDefault("import.max_qty", 500)
	v.SetDefault("import.max_multiplier", 1000)
	v.SetDefault("import.batch_size", 200)
	v.SetDefault("import.batch_timeout_secs", 60)
	v.SetDefault("import.preview_limit", 500)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "RAFFLE_SERVER_PORT",
		"server.read_timeout":      "RAFFLE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "RAFFLE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "RAFFLE_SERVER_ENVIRONMENT",
		"db.host":                  "RAFFLE_DB_HOST",
		"db.port":                  "RAFFLE_DB_PORT",
		"db.user":                  "RAFFLE_DB_USER",
		"db.password":              "RAFFLE_DB_PASSWORD",
		"db.name":                  "RAFFLE_DB_NAME",
		"db.sslmode":               "RAFFLE_DB_SSLMODE",
		"db.max_open":              "RAFFLE_DB_MAX_OPEN",
		"db.max_idle":              "RAFFLE_DB_MAX_IDLE",
		"jwt.secret":               "RAFFLE_JWT_SECRET",
		"jwt.access_expiry":        "RAFFLE_JWT_ACCESS_EXPIRY",
		"jwt.issuer":               "RAFFLE_JWT_ISSUER",
		"jwt.admin_password_hash":  "RAFFLE_JWT_ADMIN_PASSWORD_HASH",
		"s3.region":                "RAFFLE_S3_REGION",
		"s3.bucket":                "RAFFLE_S3_BUCKET",
		"s3.endpoint":              "RAFFLE_S3_ENDPOINT",
		"s3.access_key":            "RAFFLE_S3_ACCESS_KEY",
		"s3.secret_key":            "RAFFLE_S3_SECRET_KEY",
		"s3.max_file_size_mb":      "RAFFLE_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":        "RAFFLE_S3_PRESIGN_EXPIRY",
		"log.level":                "RAFFLE_LOG_LEVEL",
		"log.format":               "RAFFLE_LOG_FORMAT",
		"sms.provider":             "RAFFLE_SMS_PROVIDER",
		"sms.api_url":              "RAFFLE_SMS_API_URL",
		"sms.api_key":              "RAFFLE_SMS_API_KEY",
		"sms.sender":               "RAFFLE_SMS_SENDER",
		"sms.timeout_secs":         "RAFFLE_SMS_TIMEOUT_SECS",
		"sms.concurrency":          "RAFFLE_SMS_CONCURRENCY",
		"import.max_qty":           "RAFFLE_IMPORT_MAX_QTY",
		"import.max_multiplier":    "RAFFLE_IMPORT_MAX_MULTIPLIER",
		"import.batch_size":        "RAFFLE_IMPORT_BATCH_SIZE",
		"import.batch_timeout_secs": "RAFFLE_IMPORT_BATCH_TIMEOUT_SECS",
		"import.preview_limit":     "RAFFLE_IMPORT_PREVIEW_LIMIT",
		"cors.allowed_origins":     "RAFFLE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RAFFLE_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RAFFLE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
		AdminPasswordHash: v.GetString("jwt.admin_password_hash"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.SMS = SMSConfig{
		Provider:    v.GetString("sms.provider"),
		APIURL:      v.GetString("sms.api_url"),
		APIKey:      v.GetString("sms.api_key"),
		Sender:      v.GetString("sms.sender"),
		TimeoutSecs: v.GetInt("sms.timeout_secs"),
		Concurrency: v.GetInt("sms.concurrency"),
	}
	cfg.Import = ImportConfig{
		MaxQty:           v.GetInt("import.max_qty"),
		MaxMultiplier:    v.GetInt64("import.max_multiplier"),
		BatchSize:        v.GetInt("import.batch_size"),
		BatchTimeoutSecs: v.GetInt("import.batch_timeout_secs"),
		PreviewLimit:     v.GetInt("import.preview_limit"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
