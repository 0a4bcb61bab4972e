// Package config loads runtime configuration for the Genfit terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if any, and GENFIT_* environment
//     variables.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. https://api.genfit.id/api
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log format: text or json
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "https://api.genfit.id/api",
//	  "database_path": "genfit.db",
//	  "request_timeout": "15s",
//	  "online_check_interval": "5s",
//	  "log_format": "json",
//	  "log_level": "debug"
//	}
package config
