package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
	"github.com/dmitrijs2005/storeadmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from "set to the zero value", so a file only overrides
// the keys it mentions.
type JsonConfig struct {
	ServerBaseURL   *string         `json:"base_url"`
	Locale          *string         `json:"locale"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	JournalPath     *string         `json:"journal_path"`
	JournalLimit    *int            `json:"journal_limit"`
	DescriptorsFile *string         `json:"descriptors_file"`
	LogLevel        *string         `json:"log_level"`
	DefaultResource *string         `json:"default_resource"`
}

// parseJson overlays cfg with the JSON file named by -c/-config.
// Without the flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.JournalPath, jc.JournalPath)
	setString(&cfg.DescriptorsFile, jc.DescriptorsFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.DefaultResource, jc.DefaultResource)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.JournalLimit != nil {
		cfg.JournalLimit = *jc.JournalLimit
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
