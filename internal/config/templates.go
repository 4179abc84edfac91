package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Instrument Model Configuration

[logging]
# Log level: debug, info, warn, error
level = "info"
# Write logs to stderr
console = true
# Write logs to a rotating file
file = false
file_path = ""
# Rotation settings (megabytes, files, days)
max_size = 50
max_backups = 5
max_age = 30

[render]
# Fail on undeclared enumeration values instead of rendering an empty fragment
strict = false
# Currency used by "products swap" when --currency is omitted
default_currency = "USD"

# Reference instruments shown by "products catalog"
[[catalog.bonds]]
id = "91282CEN7"
id_type = "CUSIP"
ticker = "T 2.5 05/31/27"
coupon = 0.025
maturity = "2027-05-31"

[[catalog.swaps]]
id = "IRS-USD-5Y"
fixed_day_count = "30/360"
floating_day_count = "Act/360"
payment_frequency = "Semi-Annual"
index = "LIBOR"
tenor = "3M"
effective = "2025-01-15"
termination = "2030-01-15"
currency = "USD"
term_years = 5
swap_type = "Standard"
leg_type = "Outright"
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
