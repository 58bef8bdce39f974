// Package config holds the editor configuration and loads it from YAML or
// TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/signadot/nodedit/format"
)

// EnvVar names the configuration file when none is given explicitly.
const EnvVar = "NODEDIT_CONFIG"

var ErrInvalid = errors.New("invalid config")

// Config represents the configuration file structure.
type Config struct {
	// MaxUndo bounds the undo log. Zero means 50.
	MaxUndo int `yaml:"maxUndo" toml:"maxUndo"`

	// ReadOnlyKeys are map keys the property inspector will not write.
	ReadOnlyKeys []string `yaml:"readOnlyKeys" toml:"readOnlyKeys"`

	// GameFolder is the root of the game files.
	GameFolder string `yaml:"gameFolder" toml:"gameFolder"`

	// ObjFlow is the objflow file naming object ids, relative to
	// GameFolder unless absolute. Empty means no game module.
	ObjFlow string `yaml:"objFlow" toml:"objFlow"`

	// ModelCacheSize bounds the cache of model file lookups.
	ModelCacheSize int `yaml:"modelCacheSize" toml:"modelCacheSize"`

	// Format is used when a file name does not tell.
	Format format.Format `yaml:"format" toml:"format"`

	// IDKey and NameKey are the object fields holding the object id and
	// the object name.
	IDKey   string `yaml:"idKey" toml:"idKey"`
	NameKey string `yaml:"nameKey" toml:"nameKey"`

	// InstanceKey is the object field holding a per instance id, which
	// duplicated objects get afresh. Empty disables this.
	InstanceKey string `yaml:"instanceKey" toml:"instanceKey"`

	// Color is one of auto, always and never.
	Color string `yaml:"color" toml:"color"`
}

// Default returns a Config with the default settings.
func Default() *Config {
	return &Config{
		MaxUndo:        50,
		ModelCacheSize: 256,
		Format:         format.YAMLFormat,
		IDKey:          "ObjId",
		NameKey:        "UnitConfigName",
		InstanceKey:    "UnitIdNum",
		Color:          "auto",
	}
}

// Load loads the configuration file at path over the defaults. The format
// is chosen by suffix: .yaml, .yml or .toml. Unknown fields are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, cfg, yaml.Strict())
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown config file type %q", ErrInvalid, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the file at path, or if path is empty the file named by
// $NODEDIT_CONFIG. With neither it returns the defaults.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxUndo < 0 {
		return fmt.Errorf("%w: maxUndo %d is negative", ErrInvalid, c.MaxUndo)
	}
	if c.ModelCacheSize < 0 {
		return fmt.Errorf("%w: modelCacheSize %d is negative", ErrInvalid, c.ModelCacheSize)
	}
	if c.IDKey == "" || c.NameKey == "" {
		return fmt.Errorf("%w: idKey and nameKey must be set", ErrInvalid)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q is not auto, always or never", ErrInvalid, c.Color)
	}
	return nil
}

// ObjFlowPath is the path of the objflow file, "" if none is configured.
func (c *Config) ObjFlowPath() string {
	if c.ObjFlow == "" || filepath.IsAbs(c.ObjFlow) {
		return c.ObjFlow
	}
	return filepath.Join(c.GameFolder, c.ObjFlow)
}
