package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"errands/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type Config struct {
	HTTPPort           string
	DatabaseURL        string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	MetricsRefreshSpec string
}

// LoadConfig reads the environment, loading envFile first when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "errands"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		MetricsRefreshSpec: getEnv("METRICS_REFRESH_SPEC", jobs.DefaultStatusMetricsSpec),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_PORT %q: %w", cfg.HTTPPort, err)
	}

	return cfg, nil
}

// DSN returns the key/value connection string for the gorm postgres driver.
// DATABASE_URL takes precedence over the DB_* variables.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	kvs := []string{
		"dbname=" + quoteDSNValue(c.DBName),
		"host=" + quoteDSNValue(c.DBHost),
	}
	if c.DBPassword != "" {
		kvs = append(kvs, "password="+quoteDSNValue(c.DBPassword))
	}
	kvs = append(kvs,
		"port="+quoteDSNValue(c.DBPort),
		"sslmode="+quoteDSNValue(c.DBSslMode),
		"user="+quoteDSNValue(c.DBUser),
	)
	return strings.Join(kvs, " "), nil
}

// quoteDSNValue quotes v the same way pq.ParseURL does, so both branches of
// DSN produce the same shape.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
