// Package config loads and validates the application configuration.
// Values come from environment variables (prefix WEATHER) layered over an
// optional YAML file, with struct-tag defaults filling the rest.
package config
