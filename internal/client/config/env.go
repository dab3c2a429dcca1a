package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envBaseURL     = "STOREADMIN_BASE_URL"
	envLocale      = "STOREADMIN_LOCALE"
	envTimeout     = "STOREADMIN_TIMEOUT"
	envJournal     = "STOREADMIN_JOURNAL"
	envDescriptors = "STOREADMIN_DESCRIPTORS"
	envLogLevel    = "STOREADMIN_LOG_LEVEL"
)

// dotEnvFile is the optional file read before the real environment.
// Tests point it at a temporary file.
var dotEnvFile = ".env"

// parseEnv overlays cfg with STOREADMIN_* variables. The .env file is read
// without touching the process environment; real variables take precedence
// over file entries. A missing .env is fine, a malformed one panics, and so
// does an unparsable STOREADMIN_TIMEOUT.
func parseEnv(cfg *Config) {
	fileVals := map[string]string{}
	if dotEnvFile != "" {
		vals, err := godotenv.Read(dotEnvFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			panic(err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	if v, ok := lookup(envBaseURL); ok {
		cfg.ServerBaseURL = v
	}
	if v, ok := lookup(envLocale); ok {
		cfg.Locale = v
	}
	if v, ok := lookup(envJournal); ok {
		cfg.JournalPath = v
	}
	if v, ok := lookup(envDescriptors); ok {
		cfg.DescriptorsFile = v
	}
	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
