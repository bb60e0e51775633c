package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const TaskQueue = "folder-workflows"

const (
	EnvDataRoot     = "FW_DATA_ROOT"
	EnvTemporalHost = "FW_TEMPORAL_HOST"
	EnvTemporalPort = "FW_TEMPORAL_PORT"
	EnvServerPort   = "FW_SERVER_PORT"
	EnvMetricsPort  = "FW_METRICS_PORT"
	EnvLogLevel     = "FW_LOG_LEVEL"
	EnvDemoInterval = "FW_DEMO_INTERVAL"
)

const (
	defaultDataRoot     = "data"
	defaultServerPort   = 8080
	defaultMetricsPort  = 9090
	defaultLogLevel     = "info"
	defaultDemoInterval = 5 * time.Second
)

var (
	ErrPanicEnvNotSet      = errors.New("environment variable not set")
	ErrPanicEnvNotInt      = errors.New("environment variable is not an integer")
	ErrPanicEnvNotDuration = errors.New("environment variable is not a duration")
)

type TemporalConfig struct {
	Host string
	Port int
}

func (c *TemporalConfig) HostPort() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type ServerConfig struct {
	Temporal *TemporalConfig
	DataRoot string
	Port     int
	LogLevel string
}

type WorkerConfig struct {
	Temporal    *TemporalConfig
	MetricsPort int
	LogLevel    string
}

type DemoConfig struct {
	DataRoot string
	Interval time.Duration
	LogLevel string
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func mustGetenv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrPanicEnvNotSet, key))
	}
	return value
}

func parseInt(key, valueStr string) int {
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		panic(fmt.Errorf("%w: %s", ErrPanicEnvNotInt, key))
	}
	return value
}

func mustGetenvInt(key string) int {
	return parseInt(key, mustGetenv(key))
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return parseInt(key, value)
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(fmt.Errorf("%w: %s", ErrPanicEnvNotDuration, key))
	}
	return d
}

func newTemporalConfigFromEnv() *TemporalConfig {
	return &TemporalConfig{
		Host: mustGetenv(EnvTemporalHost),
		Port: mustGetenvInt(EnvTemporalPort),
	}
}

func NewServerConfigFromEnv() *ServerConfig {
	return &ServerConfig{
		Temporal: newTemporalConfigFromEnv(),
		DataRoot: mustGetenv(EnvDataRoot),
		Port:     getenvInt(EnvServerPort, defaultServerPort),
		LogLevel: getenv(EnvLogLevel, defaultLogLevel),
	}
}

func NewWorkerConfigFromEnv() *WorkerConfig {
	return &WorkerConfig{
		Temporal:    newTemporalConfigFromEnv(),
		MetricsPort: getenvInt(EnvMetricsPort, defaultMetricsPort),
		LogLevel:    getenv(EnvLogLevel, defaultLogLevel),
	}
}

func NewDemoConfigFromEnv() *DemoConfig {
	return &DemoConfig{
		DataRoot: getenv(EnvDataRoot, defaultDataRoot),
		Interval: getenvDuration(EnvDemoInterval, defaultDemoInterval),
		LogLevel: getenv(EnvLogLevel, defaultLogLevel),
	}
}
