package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/host"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

type globalOptions struct {
	flags     *pflag.FlagSet
	manifests []string
	chip      string
	sysfsRoot string
	debug     bool
	verbose   bool
	textfile  string
}

func addGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	o.flags = fs
	fs.StringArrayVarP(&o.manifests, "manifest", "m", nil, "path to config manifest(s), tried in order")
	fs.StringVarP(&o.chip, "chip", "c", "", "chip family, or auto to detect from the SoC id")
	fs.StringVar(&o.sysfsRoot, "sysfs-root", "", "sysfs mount point")
	fs.BoolVarP(&o.debug, "debug", "d", false, "debug mode")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose mode")
	fs.StringVar(&o.textfile, "metrics-textfile", "", "write metrics to this file on exit")
}

// config loads the manifest and lays any explicitly set flags over it.
func (o *globalOptions) config() (config.Config, error) {
	paths := o.manifests
	if len(paths) == 0 {
		paths = config.Manifests
	}
	cfg, path, err := config.Load(paths)
	if err != nil {
		return cfg, err
	}

	if o.flags.Changed("chip") {
		cfg.Chip = o.chip
	}
	if o.flags.Changed("sysfs-root") {
		cfg.SysfsRoot = o.sysfsRoot
	}
	if o.flags.Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if o.flags.Changed("verbose") {
		cfg.Log.Verbose = o.verbose
	}
	if o.flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = o.textfile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logging.SetDebug(cfg.Log.Debug)
	logging.SetVerbose(cfg.Log.Verbose)
	if path != "" {
		logging.Debug("Loaded manifest %s", path)
	}
	return cfg, nil
}

// withHAL opens the HAL for the duration of fn, then dumps metrics if asked.
func (o *globalOptions) withHAL(fn func(*hal.HAL) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	h, err := host.Open(cfg)
	if err != nil {
		return err
	}

	runErr := fn(h)
	h.Close()
	if cfg.Metrics.Textfile != "" {
		if err := h.Metrics().WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return runErr
}
