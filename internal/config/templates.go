package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Risk Assessor Configuration

[engine]
# Minimum suggested monthly SIP amount in INR
sip_floor = 5000.0

[server]
# HTTP listen address
host = "0.0.0.0"
port = 8000
# CORS allowed origins for the analyze API
allowed_origins = ["http://localhost:3000", "http://localhost:3001"]

[store]
# Path to the assessment history database
# path = "~/.config/risk-assessor/assessor.db"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file
file = true
`

// createTemplateConfig writes a commented config template to the
// config directory on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
