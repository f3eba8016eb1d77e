package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := strings.ToLower(os.Getenv("ENV")); env {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}

// GinMode maps the environment onto a gin mode
func (e Environment) GinMode() string {
	switch e {
	case Production:
		return "release"
	case Test, CI:
		return "test"
	default:
		return "debug"
	}
}
