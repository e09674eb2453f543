package config

import (
	"time"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs.
var Module = fx.Provide(
	Load,
	func(c *Config) (*time.Location, error) { return c.Location() },
)
