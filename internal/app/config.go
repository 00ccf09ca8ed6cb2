package app

import (
	"net/http"
	"os"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       // config directory, e.g. $HOME/.kiib
	ServerURL  string       // backend base URL, e.g. http://127.0.0.1:8000/api/v1
	Passphrase string       // optional; seals the credentials file at rest
	HTTP       *http.Client // optional; defaults to http.DefaultClient
}

// FromEnv fills unset fields from environment variables.
func (c Config) FromEnv() Config {
	if c.ServerURL == "" {
		c.ServerURL = getEnv("KIIB_SERVER", "")
	}
	if c.Passphrase == "" {
		c.Passphrase = getEnv("KIIB_PASSPHRASE", "")
	}
	return c
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
