package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (отсутствие файла не ошибка) и применяет флаги командной строки
// поверх переменных окружения.
func Load() error {
	var (
		envFile  string
		portFlag string
		logLevel string
	)
	flag.StringVar(&envFile, "env-file", ".env", "Path to the env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	flag.Parse()

	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	overrides := map[string]string{
		"PORT":      portFlag,
		"LOG_LEVEL": logLevel,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
