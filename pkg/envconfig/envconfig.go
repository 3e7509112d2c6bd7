package envconfig

import (
	"bufio"
	"os"
	"strings"

	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// GetEnv returns the value of the environment variable or the fallback
// when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetLogLevel reads LOG_LEVEL and maps it onto a logger level,
// defaulting to info.
func GetLogLevel() logger.LogLevel {
	switch strings.ToLower(GetEnv("LOG_LEVEL", "info")) {
	case "debug":
		return logger.LevelDebug
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// LoadEnvFile loads KEY=VALUE pairs from the given file into the process
// environment. Existing variables are not overridden. Lines starting with
// '#' and blank lines are skipped.
func LoadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)

		if key == "" || os.Getenv(key) != "" {
			continue
		}
		os.Setenv(key, value)
	}

	return scanner.Err()
}
