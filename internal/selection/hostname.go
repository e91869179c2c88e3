package selection

import (
	"os"
	"strings"
)

// ShortHostname returns the part of the machine host name before the first
// dash, or "dev" when the host name is unavailable.
func ShortHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "dev"
	}
	return shorten(name)
}

func shorten(hostname string) string {
	short, _, _ := strings.Cut(strings.TrimSpace(hostname), "-")
	if short == "" {
		return "dev"
	}
	return short
}
