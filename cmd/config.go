package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultHTTPPort              = "8080"
	defaultDBSslMode             = "disable"
	defaultJWTExpirationMinutes  = 60
	defaultPostalCodeBaseURL     = "https://viacep.com.br"
	defaultPostalCodeTimeoutSecs = 5
	defaultHubPingSchedule       = "@every 30s"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTIssuer         string
	JWTAudience       string
	JWTSecret         string
	JWTExpiration     time.Duration
	PostalCodeBaseURL string
	PostalCodeTimeout time.Duration
	CORSAllowedOrigin string
	HubPingSchedule   string
}

// LoadConfig reads the configuration through getenv, applying defaults to optional
// variables.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            getenv("DB_HOST"),
		DBPort:            getenv("DB_PORT"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), defaultDBSslMode),
		JWTIssuer:         getenv("JWT_ISSUER"),
		JWTAudience:       getenv("JWT_AUDIENCE"),
		JWTSecret:         getenv("JWT_SECRET"),
		PostalCodeBaseURL: withDefault(getenv("POSTAL_CODE_BASE_URL"), defaultPostalCodeBaseURL),
		CORSAllowedOrigin: getenv("CORS_ALLOWED_ORIGIN"),
		HubPingSchedule:   withDefault(getenv("HUB_PING_SCHEDULE"), defaultHubPingSchedule),
	}

	expiration, err := positiveInt(getenv, "JWT_EXPIRATION_MINUTES", defaultJWTExpirationMinutes)
	if err != nil {
		return Config{}, err
	}
	cfg.JWTExpiration = time.Duration(expiration) * time.Minute

	timeout, err := positiveInt(getenv, "POSTAL_CODE_TIMEOUT_SECONDS", defaultPostalCodeTimeoutSecs)
	if err != nil {
		return Config{}, err
	}
	cfg.PostalCodeTimeout = time.Duration(timeout) * time.Second

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_ISSUER", c.JWTIssuer},
		{"JWT_AUDIENCE", c.JWTAudience},
		{"JWT_SECRET", c.JWTSecret},
	}

	var missing []error
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, fmt.Errorf("%s is required", r.name))
		}
	}
	return errors.Join(missing...)
}

// DSN is the Postgres connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func positiveInt(getenv func(string) string, name string, fallback int) (int, error) {
	raw := getenv(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}
