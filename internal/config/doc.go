// Package config loads the application configuration for both datebook
// binaries. Values are merged from three sources in priority order:
// environment variables, command-line flags, and an optional JSON file.
// The server consumes the full [StructuredConfig]; the terminal client
// consumes the narrowed [ClientConfig] view.
package config
