package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// resetState clears package globals between tests.
func resetState(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer

	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	globalConfig = Config{}
	logBuffer = nil
	logCallback = nil
	output = &buf
	mutex.Unlock()

	return &buf
}

func TestModuleLevelOverride(t *testing.T) {
	resetState(t)

	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"lcd": "debug",
			"api": "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"lcd", true, true, true},
		{"api", false, false, true},
		{"other", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()

			if got := handler.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("module %q: Debug enabled = %v, want %v", tt.module, got, tt.wantDebug)
			}
			if got := handler.Enabled(context.Background(), slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("module %q: Info enabled = %v, want %v", tt.module, got, tt.wantInfo)
			}
			if got := handler.Enabled(context.Background(), slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("module %q: Warn enabled = %v, want %v", tt.module, got, tt.wantWarn)
			}
		})
	}
}

func TestModuleLoggerOutput(t *testing.T) {
	buf := resetState(t)

	Initialize(Config{Level: "info", Format: "text"})
	logger := GetLogger("lcd")

	logger.Debug("hidden message")
	logger.Info("Wrote parameter", "param", "lcd_row", "value", "1")

	output := buf.String()
	if strings.Contains(output, "hidden message") {
		t.Error("Debug message written at info level")
	}
	for _, want := range []string{"Wrote parameter", "module=lcd", "param=lcd_row"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	buf := resetState(t)

	Initialize(Config{Level: "info", Format: "json"})
	GetLogger("api").Info("started")

	if !strings.Contains(buf.String(), `"module":"api"`) {
		t.Errorf("expected JSON output, got %s", buf.String())
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetState(t)

	handlerBefore := GetLogger("lcd").Handler()

	if handlerBefore.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Logger created before Initialize should NOT have debug enabled")
	}

	Initialize(Config{
		Level:   "info",
		Format:  "text",
		Modules: map[string]string{"lcd": "debug"},
	})

	// The LevelVar shared with the earlier handler is updated in place.
	if !handlerBefore.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Cached handler should have debug enabled after Initialize updates LevelVar")
	}
}

func TestBufferAndCallback(t *testing.T) {
	resetState(t)

	var got []LogEntry
	Initialize(Config{Level: "info"})
	SetLogCallback(func(entry LogEntry) {
		got = append(got, entry)
	})

	GetLogger("lcd").Warn("Failed to write text", "error", context.Canceled)

	entries := GetBuffer().ReadAll()
	if len(entries) != 1 {
		t.Fatalf("buffer has %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Module != "lcd" || entry.Level != "warn" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Attributes["error"] != context.Canceled.Error() {
		t.Errorf("error attribute = %v", entry.Attributes["error"])
	}
	if len(got) != 1 {
		t.Errorf("callback called %d times, want 1", len(got))
	}
}

func TestMultiHandlerDebugOutput(t *testing.T) {
	var buf bytes.Buffer

	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(debugHandler, infoHandler)).With("module", "test")
	logger.Debug("debug only message")

	if count := strings.Count(buf.String(), "debug only message"); count != 1 {
		t.Errorf("Expected 1 debug message, got %d. Output: %s", count, buf.String())
	}
}

func TestParseLevelValues(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		isNil bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if tt.isNil {
				if got != nil {
					t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseLevel(%q) = nil, want %v", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestRingBufferWraps(t *testing.T) {
	rb := NewRingBuffer(3)
	for _, msg := range []string{"a", "b", "c", "d"} {
		rb.Write(LogEntry{Message: msg})
	}

	entries := rb.ReadAll()
	if rb.Count() != 3 || len(entries) != 3 {
		t.Fatalf("Count() = %d, len = %d, want 3", rb.Count(), len(entries))
	}
	if entries[0].Message != "b" || entries[2].Message != "d" {
		t.Errorf("ReadAll() order = %v", entries)
	}
}
