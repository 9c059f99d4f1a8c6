package config

import "fmt"

// StoreConfig selects the record-store backend.
type StoreConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `json:"driver"`
	// Path is the seed file for the memory driver or the database file for
	// the sqlite driver.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *StoreConfig) SetDefaults() {
	if c.Driver == "" {
		c.Driver = "memory"
	}
	if c.Path == "" {
		switch c.Driver {
		case "sqlite":
			c.Path = "fieldcoord.db"
		default:
			c.Path = "fleet.yaml"
		}
	}
}

// Validate checks mandatory fields.
func (c StoreConfig) Validate() error {
	if c.Driver != "memory" && c.Driver != "sqlite" {
		return fmt.Errorf("unknown store driver %s", c.Driver)
	}
	if c.Path == "" {
		return fmt.Errorf("store path is required")
	}
	return nil
}
