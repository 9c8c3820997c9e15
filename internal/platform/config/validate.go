package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be in 1..65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required by the otlp exporter")
	}

	if seed := c.Store.SeedFile; seed != "" {
		ext := strings.ToLower(filepath.Ext(seed))
		p.require(ext == ".yaml" || ext == ".yml", "store.seed_file must be a .yaml or .yml file, got %q", seed)
	}

	return p.err()
}

type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %s, got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error {
	return errors.Join(p...)
}
