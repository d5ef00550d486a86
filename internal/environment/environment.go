// Package environment reads runtime environment configuration.
package environment

import (
	"os"
)

// AppVersion returns the build version. The placeholder is replaced in
// release builds.
func AppVersion() string {
	return "REPL_VERSION"
}

// IsTestMode reports whether the i18n layer should echo translation keys
// instead of localized strings.
func IsTestMode() bool {
	_, present := os.LookupEnv("LCOVSUM_TEST")
	return present
}
