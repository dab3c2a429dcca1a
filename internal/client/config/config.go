package config

import "time"

// Config holds runtime settings for the storeadmin CLI.
//
// Fields:
//   - ServerBaseURL: base URL the resource paths are appended to.
//   - Locale: language of user-facing messages.
//   - RequestTimeout: per-request timeout; zero leaves it to the HTTP client.
//   - JournalPath / JournalLimit: local SQLite write journal and how many
//     entries it keeps (0 keeps everything).
//   - DescriptorsFile: optional YAML with additional resource descriptors.
//   - LogLevel: minimum slog level.
//   - DefaultResource: screen opened on start.
type Config struct {
	ServerBaseURL   string
	Locale          string
	RequestTimeout  time.Duration
	JournalPath     string
	JournalLimit    int
	DescriptorsFile string
	LogLevel        string
	DefaultResource string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3000/api"
	c.Locale = "en"
	c.RequestTimeout = 0
	c.JournalPath = "journal.db"
	c.JournalLimit = 500
	c.DescriptorsFile = ""
	c.LogLevel = "info"
	c.DefaultResource = "members"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
