package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// overrides флаги командной строки, которые перекрывают переменные из .env.
var overrides = map[string]string{
	"port":    "PORT",
	"layouts": "LAYOUTS_FILE",
}

// Load читает .env и применяет поверх него флаги -port и -layouts.
// Уже выставленные переменные окружения .env не перезаписывает.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	values := make(map[string]*string, len(overrides))
	for name, env := range overrides {
		values[name] = flag.String(name, "", fmt.Sprintf("overrides %s environment variable", env))
	}
	flag.Parse()

	for name, value := range values {
		if *value == "" {
			continue
		}
		env := overrides[name]
		if err := os.Setenv(env, *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
