package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	MongoURI       string
	ConnectTimeout time.Duration
	Database       string // from -d/--database; empty means generate one
	LogLevel       string
	LogFormat      string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getduration rejects values without a unit ("5") and non-positive ones.
func getduration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s: must be positive, got %s", k, v)
	}
	return d, nil
}

func Load() (Config, error) {
	timeout, err := getduration("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	return Config{
		MongoURI:       getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		ConnectTimeout: timeout,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
	}, nil
}
