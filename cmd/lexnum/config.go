package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// config holds the settings of a lexnum session.
type config struct {
	Prompt  string `toml:"prompt"`
	Trace   string `toml:"trace"`
	Offset  int    `toml:"offset"`
	Compare bool   `toml:"compare"`
	Jobs    int    `toml:"jobs"`
}

func defaultConfig() config {
	return config{
		Prompt: "lexnum> ",
		Trace:  "Info",
	}
}

// loadConfig reads settings from a TOML file on top of cfg. An empty path
// leaves cfg untouched.
func loadConfig(path string, cfg config) (config, error) {
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown settings: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("offset") && cfg.Offset < 0 {
		return cfg, fmt.Errorf("%s: offset must not be negative: %d", path, cfg.Offset)
	}
	return cfg, nil
}

// options are the command line flags which override config settings.
type options struct {
	trace   *string
	offset  *int
	compare *bool
	jobs    *int
}

func defineFlags(fs *flag.FlagSet) options {
	return options{
		trace:   fs.String("trace", "Info", "Trace level [Debug|Info|Error]"),
		offset:  fs.Int("offset", 0, "Offset to scan from within each line"),
		compare: fs.Bool("compare", false, "Print the longest grammar match, too"),
		jobs:    fs.Int("jobs", 0, "Concurrent scans in batch mode (0 = GOMAXPROCS)"),
	}
}

// override copies all flags explicitly set on the command line into cfg.
func (opts options) override(fs *flag.FlagSet, cfg config) config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = *opts.trace
		case "offset":
			cfg.Offset = *opts.offset
		case "compare":
			cfg.Compare = *opts.compare
		case "jobs":
			cfg.Jobs = *opts.jobs
		}
	})
	return cfg
}
