package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

// testOptions mirrors the shape of the CLI options struct.
type testOptions struct {
	Config string `help:"Config file path"`

	SysfsBase    string   `toml:"lcd.sysfs_base" env:"LCD_SYSFS_BASE"`
	Rows         int      `toml:"lcd.rows" env:"LCD_ROWS"`
	Metrics      bool     `toml:"metrics.enabled" env:"METRICS_ENABLED"`
	Tags         []string `toml:"lcd.tags" env:"LCD_TAGS"`
	LoggingLevel string   `toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingLCD   string   `toml:"logging.lcd" env:"LOGGING_LCD"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lcdctl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

const sampleConfig = `
[lcd]
sysfs_base = "/tmp/params"
rows = 2
tags = ["a", "b"]

[metrics]
enabled = true

[logging]
level = "debug"
lcd = "warn"
`

func TestLoadConfigFromTOML(t *testing.T) {
	opts := &testOptions{Config: writeConfig(t, sampleConfig)}

	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := testOptions{
		Config:       opts.Config,
		SysfsBase:    "/tmp/params",
		Rows:         2,
		Metrics:      true,
		Tags:         []string{"a", "b"},
		LoggingLevel: "debug",
		LoggingLCD:   "warn",
	}
	if !reflect.DeepEqual(*opts, want) {
		t.Errorf("LoadConfig() = %+v, want %+v", *opts, want)
	}
}

func TestLoadConfigEnvOverridesTOML(t *testing.T) {
	t.Setenv("LCDCTL_LCD_SYSFS_BASE", "/env/params")
	t.Setenv("LCDCTL_LCD_ROWS", "4")
	t.Setenv("LCDCTL_METRICS_ENABLED", "false")
	t.Setenv("LCDCTL_LCD_TAGS", " x , y ")

	opts := &testOptions{Config: writeConfig(t, sampleConfig)}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.SysfsBase != "/env/params" {
		t.Errorf("SysfsBase = %q, want env override", opts.SysfsBase)
	}
	if opts.Rows != 4 {
		t.Errorf("Rows = %d, want 4", opts.Rows)
	}
	if opts.Metrics {
		t.Error("Metrics = true, want env override false")
	}
	if !reflect.DeepEqual(opts.Tags, []string{"x", "y"}) {
		t.Errorf("Tags = %v", opts.Tags)
	}
	// Untouched by env
	if opts.LoggingLevel != "debug" {
		t.Errorf("LoggingLevel = %q, want TOML value", opts.LoggingLevel)
	}
}

func TestLoadConfigCLIWins(t *testing.T) {
	t.Setenv("LCDCTL_LCD_ROWS", "4")

	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().String("sysfs-base", "", "")
	cmd.Flags().Int("rows", 0, "")
	if err := cmd.ParseFlags([]string{"--sysfs-base", "/cli/params", "--rows", "1"}); err != nil {
		t.Fatal(err)
	}

	opts := &testOptions{
		Config:    writeConfig(t, sampleConfig),
		SysfsBase: "/cli/params",
		Rows:      1,
	}
	if err := LoadConfig(opts, cmd); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.SysfsBase != "/cli/params" {
		t.Errorf("SysfsBase = %q, CLI flag should win over TOML", opts.SysfsBase)
	}
	if opts.Rows != 1 {
		t.Errorf("Rows = %d, CLI flag should win over env", opts.Rows)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := &testOptions{Config: filepath.Join(t.TempDir(), "nonexistent.toml")}

	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig should not fail for missing file: %v", err)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	opts := &testOptions{Config: writeConfig(t, "[lcd\ninvalid toml syntax\n")}

	if err := LoadConfig(opts, nil); err == nil {
		t.Fatal("LoadConfig should fail for invalid TOML")
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := map[string]string{
		"Port":         "port",
		"SysfsBase":    "sysfs-base",
		"ClearDelayMs": "clear-delay-ms",
		"LoggingLevel": "logging-level",
		"LoggingLCD":   "logging-lcd",
		"HTTPPort":     "http-port",
	}
	for in, want := range tests {
		if got := fieldNameToFlag(in); got != want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetNestedValue(t *testing.T) {
	data := map[string]any{
		"lcd": map[string]any{
			"geometry": map[string]any{"rows": int64(4)},
			"backend":  "sysfs",
		},
		"root": "root_value",
	}

	tests := []struct {
		path     string
		expected any
	}{
		{"root", "root_value"},
		{"lcd.backend", "sysfs"},
		{"lcd.geometry.rows", int64(4)},
		{"nonexistent", nil},
		{"lcd.nonexistent", nil},
		{"root.child", nil},
	}

	for _, tt := range tests {
		if got := getNestedValue(data, tt.path); got != tt.expected {
			t.Errorf("getNestedValue(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func TestSetFieldValueFromString(t *testing.T) {
	type target struct {
		S string
		B bool
		I int
	}
	s := &target{I: 7}
	v := reflect.ValueOf(s).Elem()

	setFieldValueFromString(v.FieldByName("S"), "text")
	setFieldValueFromString(v.FieldByName("B"), "true")
	setFieldValueFromString(v.FieldByName("I"), "not-a-number")

	if s.S != "text" || !s.B {
		t.Errorf("got %+v", *s)
	}
	if s.I != 7 {
		t.Errorf("invalid int should leave field untouched, got %d", s.I)
	}
}
