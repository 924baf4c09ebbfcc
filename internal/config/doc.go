// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and CASEFILE_ environment variables.
// It provides type-safe access to the settings needed by the server, the CLI
// and the storage backends.
package config
