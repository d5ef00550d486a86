// Package constants defines shared constant values.
package constants

// AppName is the project identifier used in logs and metadata.
const AppName = "lcov-summary"

// CommandName is the primary CLI command name.
const CommandName = "lcovsum"
