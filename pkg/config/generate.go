package config

import (
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration. Credentials are omitted.
func ToTOML(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}

// GenerateConfigContent returns a starter config file: the defaults with
// every value commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment, keeping comments,
// blank lines and [table] headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// [[array]] headers go with their keys
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") &&
			!strings.HasPrefix(trimmed, "[[") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
