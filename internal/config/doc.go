// Package config loads and validates application settings from environment
// variables, an optional YAML config file, and a local .env file. Settings
// are grouped into typed sections so components depend only on the slice of
// configuration they actually need.
package config
