package lcd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// op is one observable step: a parameter write, a text write or a sleep.
type op struct {
	kind  string // "param", "text" or "sleep"
	name  string
	value string
	sleep time.Duration
}

// recorder is a Backend and Sleeper that logs every call in order.
type recorder struct {
	mu       sync.Mutex
	ops      []op
	failWith map[string]error
	params   map[Param]string
}

func newRecorder() *recorder {
	return &recorder{
		failWith: make(map[string]error),
		params:   make(map[Param]string),
	}
}

func (r *recorder) WriteParam(p Param, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op{kind: "param", name: string(p), value: value})
	if err := r.failWith[string(p)]; err != nil {
		return err
	}
	r.params[p] = value
	return nil
}

func (r *recorder) WriteText(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op{kind: "text", value: text})
	return r.failWith["text"]
}

func (r *recorder) ReadParam(p Param) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.params[p]; ok {
		return v, nil
	}
	return "0", nil
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.ops = append(r.ops, op{kind: "sleep", sleep: d})
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recorder) recorded() []op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]op(nil), r.ops...)
}

func newRecordedDisplay(r *recorder) *Display {
	return NewDisplay(r, Options{Sleeper: r.sleep}, nil, newTestLogger())
}

// fakeDriver lays out a parameter directory and device file like the real driver.
func fakeDriver(t *testing.T) (base, device string) {
	t.Helper()
	root := t.TempDir()
	base = filepath.Join(root, "parameters")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range Params {
		if err := os.WriteFile(filepath.Join(base, string(p)), []byte("0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	device = filepath.Join(root, "hd44780_driver")
	if err := os.WriteFile(device, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return base, device
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

var errBoom = errors.New("boom")
