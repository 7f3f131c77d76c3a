package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Error ties a failure to the config file it came from
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	checkVariants = []string{"all", "bounds", "overflow", "none"}
	readers       = []string{"native", "goppt"}
)

// Load reads a YAML config file on top of base
func Load(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, &Error{Op: "config.load", Path: path, Err: err}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return base, &Error{Op: "config.load", Path: path, Err: err}
	}

	return Map(path, dto, base)
}

// Map applies the fields set in dto to base and validates the result
func Map(path string, yc YAMLConfig, base Config) (Config, error) {
	cfg := base

	if yc.Output != "" {
		cfg.OutputPath = yc.Output
	}
	if yc.Layout != "" {
		cfg.LayoutPath = yc.Layout
	}
	if yc.QRURL != "" {
		cfg.QRURL = yc.QRURL
	}
	if yc.Check != "" {
		cfg.Check = strings.ToLower(yc.Check)
	}
	if yc.Stats != nil {
		cfg.ShowStats = *yc.Stats
	}
	if yc.Reader != "" {
		cfg.Reader = strings.ToLower(yc.Reader)
	}

	if len(yc.Palette) > 0 {
		merged := make(map[string]string, len(cfg.Palette)+len(yc.Palette))
		for k, v := range cfg.Palette {
			merged[k] = v
		}
		for k, v := range yc.Palette {
			merged[k] = v
		}
		cfg.Palette = merged
	}

	p := yc.Properties
	if p.Title != "" {
		cfg.Properties.Title = p.Title
	}
	if p.Subject != "" {
		cfg.Properties.Subject = p.Subject
	}
	if p.Author != "" {
		cfg.Properties.Author = p.Author
	}
	if p.Company != "" {
		cfg.Properties.Company = p.Company
	}

	if err := cfg.Validate(); err != nil {
		return base, &Error{Op: "config.map", Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks the fields that have a closed set of values
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return invalidField("output", "output path is required")
	}
	if !strings.EqualFold(filepath.Ext(c.OutputPath), ".pptx") {
		return invalidField("output", fmt.Sprintf("%q is not a .pptx path", c.OutputPath))
	}
	if c.Check != "" && !slices.Contains(checkVariants, c.Check) {
		return invalidField("check", fmt.Sprintf("unknown variant %q", c.Check))
	}
	if c.Reader != "" && !slices.Contains(readers, c.Reader) {
		return invalidField("reader", fmt.Sprintf("unknown reader %q", c.Reader))
	}
	return nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig)
}
