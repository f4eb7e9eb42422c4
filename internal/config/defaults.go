// Package config handles taskwatch configuration.
package config

const (
	// DefaultDir is the default taskwatch directory name.
	DefaultDir = "taskwatch"
	// DefaultDataFile is the default tasks file name.
	DefaultDataFile = "tasks.json"
	// DefaultCategory is the default category for new tasks.
	DefaultCategory = "other"

	// ConfigFileName is the name of the config file within the taskwatch directory.
	ConfigFileName = "config.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)
