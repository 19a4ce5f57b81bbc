package conf

import (
	"fmt"
	"strconv"
)

// ValidateSettings checks the loaded settings for values the service
// cannot run with. It returns the first violation found.
func ValidateSettings(settings *Settings) error {
	if settings.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if settings.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busytimeout must not be negative, got %d", settings.Database.BusyTimeout)
	}
	if settings.Lookup.MaxChars <= 0 {
		return fmt.Errorf("lookup.maxchars must be positive, got %d", settings.Lookup.MaxChars)
	}
	if settings.WebServer.Port == "" {
		return fmt.Errorf("webserver.port must not be empty")
	}
	if port, err := strconv.Atoi(settings.WebServer.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("webserver.port must be a number between 1 and 65535, got %q", settings.WebServer.Port)
	}
	return nil
}
