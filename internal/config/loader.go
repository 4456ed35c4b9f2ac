package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBufferSize     = 4096
	minBufferSize         = 512
	maxBufferSize         = 65536
	defaultMaxRequestSize = 65536
)

type config struct {
	httpPort string

	rootDir         string
	defaultDocument string

	bufferSize     int
	maxRequestSize int
	readTimeout    time.Duration

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	httpPort, err := parsePort()
	if err != nil {
		return nil, err
	}

	rootDir := getenv("ROOT_DIR", ".")
	defaultDocument := strings.TrimLeft(getenv("DEFAULT_DOCUMENT", "HelloWorld.html"), "/")
	if defaultDocument == "" {
		return nil, fmt.Errorf("DEFAULT_DOCUMENT must not be empty")
	}

	bufferSize := parseBufferSize()
	maxRequestSize := parseMaxRequestSize(bufferSize)

	readTimeout, err := parseReadTimeout()
	if err != nil {
		return nil, err
	}

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		httpPort:        httpPort,
		rootDir:         rootDir,
		defaultDocument: defaultDocument,
		bufferSize:      bufferSize,
		maxRequestSize:  maxRequestSize,
		readTimeout:     readTimeout,
		pprofEnabled:    pprofEnabled,
		pprofPort:       pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort() (string, error) {
	raw := getenv("HTTP_PORT", "6789")
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid HTTP_PORT %q: %w", raw, err)
	}
	return raw, nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		log.Printf("Invalid BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func parseMaxRequestSize(bufferSize int) int {
	raw := getenv("MAX_REQUEST_SIZE", strconv.Itoa(defaultMaxRequestSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		log.Printf("Invalid MAX_REQUEST_SIZE, falling back to %d", defaultMaxRequestSize)
		size = defaultMaxRequestSize
	}
	if size < bufferSize {
		return bufferSize
	}
	return size
}

func parseReadTimeout() (time.Duration, error) {
	raw := getenv("READ_TIMEOUT", "30s")
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid READ_TIMEOUT %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("READ_TIMEOUT must not be negative")
	}
	return d, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
