package config

import (
	"flag"
	"os"

	consoleConfig "github.com/iurnickita/bankledger/internal/console/config"
	loggerConfig "github.com/iurnickita/bankledger/internal/logger/config"
)

type Config struct {
	Console consoleConfig.Config
	Logger  loggerConfig.Config
}

func GetConfig() Config {
	dataDir := flag.String("d", "bankdata", "каталог для снапшота и выписок")
	logLevel := flag.String("l", "info", "уровень логирования")
	flag.Parse()

	return Config{
		Console: consoleConfig.Config{
			DataDir: getEnv("BANKLEDGER_DATA_DIR", *dataDir),
		},
		Logger: loggerConfig.Config{
			LogLevel: getEnv("BANKLEDGER_LOG_LEVEL", *logLevel),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
