package toolshed

import "os"

// Config holds the knobs for a run. Flags override values loaded from the
// environment.
type Config struct {
	Store    string
	LogLevel string
	NoBanner bool
}

// LoadConfig reads TOOLSHED_* variables, falling back to defaults.
func LoadConfig() *Config {
	return &Config{
		Store:    getEnv("TOOLSHED_STORE", StoreMemory),
		LogLevel: getEnv("TOOLSHED_LOG_LEVEL", "warn"),
		NoBanner: os.Getenv("TOOLSHED_NO_BANNER") == "1",
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
