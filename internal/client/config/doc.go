// Package config loads runtime configuration for the storeadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables, optionally seeded from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-l string   UI locale ("en" or "th")
//	-t int      request timeout in seconds (0 keeps the HTTP client default)
//	-j string   path of the local write journal (empty disables it)
//	-r string   YAML file with extra resource descriptors
//	-v string   log level (debug, info, warn, error)
//
// # Environment
//
//	STOREADMIN_BASE_URL, STOREADMIN_LOCALE, STOREADMIN_TIMEOUT ("5s"),
//	STOREADMIN_JOURNAL, STOREADMIN_DESCRIPTORS, STOREADMIN_LOG_LEVEL
//
// Values present in the real environment win over the .env file.
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:3000/api",
//	  "locale": "th",
//	  "request_timeout": "5s",
//	  "journal_path": "journal.db",
//	  "journal_limit": 500,
//	  "descriptors_file": "resources.yaml",
//	  "log_level": "info",
//	  "default_resource": "orders"
//	}
package config
