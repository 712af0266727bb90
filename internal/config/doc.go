// Package config defines the settings of the alarm clock and provides
// helpers to load, validate and save them in YAML format.
//
// A missing settings file is not an error: Load falls back to Default,
// which renders London and New York on the world-clock tab.
package config
