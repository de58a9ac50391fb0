// Package config holds the settings components that describe how the
// functions are wired to their AWS collaborators. Values are read through
// the settings project so the same definitions drive both the loaded
// configuration and the generated help output.
package config
