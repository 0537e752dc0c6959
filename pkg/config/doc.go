// Package config handles configuration management for mmv.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
package config
