package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST backend
//	-l string   locale
//	-t int      request timeout (in seconds)
//	-j string   journal path
//	-r string   resource descriptors YAML
//	-v string   log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// layers (-c) do not break parsing. The timeout is only touched when -t is
// given, so sub-second values from earlier layers survive. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-t", "-j", "-r", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the REST backend")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "UI locale (en, th)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.JournalPath, "j", cfg.JournalPath, "write journal path (empty disables it)")
	fs.StringVar(&cfg.DescriptorsFile, "r", cfg.DescriptorsFile, "resource descriptors YAML file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
