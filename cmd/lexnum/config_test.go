package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexnum.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexnum.cli")
	defer teardown()
	//
	path := writeFile(t, "prompt = \"> \"\noffset = 2\ncompare = true\n")
	cfg, err := loadConfig(path, defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || cfg.Offset != 2 || !cfg.Compare {
		t.Errorf("settings not loaded: %+v", cfg)
	}
	if cfg.Trace != "Info" {
		t.Errorf("expected default trace level to survive, have %q", cfg.Trace)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := loadConfig("", defaultConfig())
	if err != nil || cfg != defaultConfig() {
		t.Errorf("expected default config, have %+v, %v", cfg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for i, content := range []string{
		"offset = -1\n",
		"colour = \"on\"\n",
		"offset = \"two\"\n",
	} {
		if _, err := loadConfig(writeFile(t, content), defaultConfig()); err == nil {
			t.Errorf("test %d: expected config %q to be rejected", i, strings.TrimSpace(content))
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), defaultConfig()); err == nil {
		t.Errorf("expected missing config file to be reported")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	fs := flag.NewFlagSet("lexnum", flag.ContinueOnError)
	opts := defineFlags(fs)
	if err := fs.Parse([]string{"-offset", "3", "-jobs", "1"}); err != nil {
		t.Fatal(err)
	}
	cfg := config{Prompt: "> ", Trace: "Debug", Offset: 1, Compare: true}
	cfg = opts.override(fs, cfg)
	if cfg.Offset != 3 || cfg.Jobs != 1 {
		t.Errorf("expected flags to override settings, have %+v", cfg)
	}
	if cfg.Trace != "Debug" || !cfg.Compare {
		t.Errorf("expected unset flags to leave settings alone, have %+v", cfg)
	}
}
