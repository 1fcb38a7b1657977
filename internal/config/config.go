// Package config loads the PowerPulse QCOM manifest. Like the PowerPulse
// device manifest it is searched for across a fixed list of locations and the
// first readable file wins; TOML is the native format, YAML is accepted too.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Manifests are the default search locations, in priority order.
var Manifests = []string{
	"./powerpulse-qcom.toml",
	"/data/local/tmp/powerpulse-qcom.toml",
	"/vendor/etc/powerpulse-qcom.toml",
	"/system/vendor/etc/powerpulse-qcom.toml",
	"/system/etc/powerpulse-qcom.toml",
	"/etc/powerpulse-qcom.toml",
}

type Config struct {
	// Chip is a family name such as "msm8992", or "auto" to detect it from
	// the SoC id.
	Chip      string         `toml:"chip" yaml:"chip"`
	SysfsRoot string         `toml:"sysfs_root" yaml:"sysfs_root"`
	Log       LogConfig      `toml:"log" yaml:"log"`
	Encode    EncodeConfig   `toml:"encode" yaml:"encode"`
	Governor  GovernorConfig `toml:"governor" yaml:"governor"`
	Metrics   MetricsConfig  `toml:"metrics" yaml:"metrics"`
}

type LogConfig struct {
	Debug   bool `toml:"debug" yaml:"debug"`
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

type EncodeConfig struct {
	// Delay is how long a delayed video encode enable waits.
	Delay Duration `toml:"delay" yaml:"delay"`
}

type GovernorConfig struct {
	// Interactive lists the governors that honour hints.
	Interactive []string `toml:"interactive" yaml:"interactive"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text dump on request.
	Textfile string `toml:"textfile" yaml:"textfile"`
}

// Duration decodes "2s"-style strings from both TOML and YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

func Default() Config {
	return Config{
		Chip:      "auto",
		SysfsRoot: "/sys",
		Encode:    EncodeConfig{Delay: Duration{2 * time.Second}},
		Governor:  GovernorConfig{Interactive: []string{"interactive", "interactivex"}},
	}
}

// Load decodes the first readable manifest in paths over the defaults. It
// returns the path used, or "" when none was found.
func Load(paths []string) (Config, string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// LoadFile decodes a single manifest over the defaults and validates it.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read manifest: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	default:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse manifest %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse manifest %s: unknown key %s", path, undecoded[0])
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("manifest %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Chip) == "" {
		errs = append(errs, errors.New("chip must not be empty"))
	}
	if c.SysfsRoot == "" {
		errs = append(errs, errors.New("sysfs_root must not be empty"))
	}
	if c.Encode.Delay.Duration <= 0 {
		errs = append(errs, errors.New("encode.delay must be > 0"))
	}
	if len(c.Governor.Interactive) == 0 {
		errs = append(errs, errors.New("governor.interactive must list at least one governor"))
	}
	return errors.Join(errs...)
}
