package config

import (
	"os"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	apiPortEnvKey     = "API_PORT"
	storageFileEnvKey = "STORAGE_FILE"
	seedFileEnvKey    = "SEED_FILE"
	logLevelEnvKey    = "LOG_LEVEL"
)

const (
	DefaultPort        = "8080"
	DefaultStorageFile = "./storage/account.json"
	DefaultLogLevel    = "info"
)

type App struct {
	Port        string
	StorageFile string
	SeedFile    string
	LogLevel    string
}

// NewApp reads the configuration from the environment, using defaults for
// variables that are not set.
func NewApp() App {
	return App{
		Port:        lookupEnv(apiPortEnvKey, DefaultPort),
		StorageFile: lookupEnv(storageFileEnvKey, DefaultStorageFile),
		SeedFile:    lookupEnv(seedFileEnvKey, ""),
		LogLevel:    lookupEnv(logLevelEnvKey, DefaultLogLevel),
	}
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.By(isPort)),
		validation.Field(&a.StorageFile, validation.Required),
		validation.Field(&a.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

func isPort(value any) error {
	s, _ := value.(string)
	port, err := strconv.Atoi(s)
	if err != nil || port < 0 || port > 65535 {
		return validation.NewError("validation_is_port", "must be a valid port number")
	}
	return nil
}

func lookupEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
