package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	Port           string
	Environment    string
	DocumentPrefix string
	JWTCfg         JWTConfig
	PostgresCfg    PostgresConfig
	RabbitMQCfg    RabbitMQConfig
	RedisCfg       RedisConfig
	MinioCfg       MinioConfig
	SMTPCfg        SMTPConfig
	PayTechCfg     PayTechConfig
	ShippingCfg    ShippingConfig
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  int // minutes
	RefreshExpiry int // hours
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type RabbitMQConfig struct {
	Username string
	Password string
	Host     string
	Port     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MinioConfig struct {
	MinioURL         string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioLocation    string
	MinioSecure      string
	MinioResourceURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type PayTechConfig struct {
	APIKey     string
	APISecret  string
	BaseURL    string
	IPNURL     string
	SuccessURL string
	CancelURL  string
}

type ShippingConfig struct {
	DakarFee   int64
	RegionFee  int64
	DakarZones []string
}

func New() *AppConfig {
	return &AppConfig{
		Port:           getEnvOrDefault("PORT", "8080"),
		Environment:    getEnvOrDefault("APP_ENV", "development"),
		DocumentPrefix: getEnvOrDefault("DOCUMENT_PREFIX", "YMP"),
		JWTCfg: JWTConfig{
			Secret:        getEnvOrDefault("JWT_SECRET", "change-me-in-production"),
			AccessExpiry:  getEnvIntOrDefault("JWT_ACCESS_EXPIRY_MINUTES", 60),
			RefreshExpiry: getEnvIntOrDefault("JWT_REFRESH_EXPIRY_HOURS", 168),
		},
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "yama"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		RabbitMQCfg: RabbitMQConfig{
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		MinioCfg: MinioConfig{
			MinioURL:         getEnvOrDefault("MINIO_ENDPOINT", "http://localhost:9000"),
			MinioAccessKey:   getEnvOrDefault("MINIO_ACCESS_KEY", "minio"),
			MinioSecretKey:   getEnvOrDefault("MINIO_SECRET_KEY", "minio123"),
			MinioLocation:    getEnvOrDefault("MINIO_LOCATION", "us-east-1"),
			MinioSecure:      getEnvOrDefault("MINIO_SECURE", "false"),
			MinioResourceURL: getEnvOrDefault("MINIO_RESOURCE_URL", "http://localhost:9000/"),
		},
		SMTPCfg: SMTPConfig{
			Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username: getEnvOrDefault("SMTP_USERNAME", ""),
			Password: getEnvOrDefault("SMTP_PASSWORD", ""),
			From:     getEnvOrDefault("SMTP_FROM", "contact@yamaplus.sn"),
		},
		PayTechCfg: PayTechConfig{
			APIKey:     getEnvOrDefault("PAYTECH_API_KEY", ""),
			APISecret:  getEnvOrDefault("PAYTECH_API_SECRET", ""),
			BaseURL:    getEnvOrDefault("PAYTECH_BASE_URL", "https://paytech.sn/api"),
			IPNURL:     getEnvOrDefault("PAYTECH_IPN_URL", ""),
			SuccessURL: getEnvOrDefault("PAYTECH_SUCCESS_URL", ""),
			CancelURL:  getEnvOrDefault("PAYTECH_CANCEL_URL", ""),
		},
		ShippingCfg: ShippingConfig{
			DakarFee:  int64(getEnvIntOrDefault("SHIPPING_FEE_DAKAR", 2500)),
			RegionFee: int64(getEnvIntOrDefault("SHIPPING_FEE_REGION", 3500)),
			DakarZones: []string{
				"dakar", "pikine", "guediawaye", "rufisque", "keur massar",
			},
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
