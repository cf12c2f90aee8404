package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/smazurov/lcdctl/internal/config"
	"github.com/smazurov/lcdctl/internal/lcd"
)

func parsePosition(rowArg, colArg string) (row, col int, err error) {
	row, err = strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not a number", lcd.ErrInvalidValue, rowArg)
	}
	col, err = strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q is not a number", lcd.ErrInvalidValue, colArg)
	}
	return row, col, nil
}

// runCursor moves the cursor to the ROW COL arguments.
func runCursor(ctx context.Context, d *lcd.Display, args []string) error {
	row, col, err := parsePosition(args[0], args[1])
	if err != nil {
		return err
	}
	return d.SetCursor(ctx, row, col)
}

// runWrite writes text, at row/col when both were given.
func runWrite(ctx context.Context, d *lcd.Display, text string, row, col int, positioned bool) error {
	if positioned {
		return d.Print(ctx, row, col, text)
	}
	return d.WriteText(text)
}

// runParam writes a raw value to one driver parameter.
func runParam(d *lcd.Display, name, value string) error {
	p, err := lcd.ParseParam(name)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %q is not a decimal integer", lcd.ErrInvalidValue, value)
	}
	return d.WriteParam(p, v)
}

// statusReport is what `status --json` prints.
type statusReport struct {
	Backend  string          `json:"backend"`
	Geometry lcd.Geometry    `json:"geometry"`
	Status   *lcd.Status     `json:"status,omitempty"`
	Error    string          `json:"error,omitempty"`
	Checks   []lcd.PathCheck `json:"checks"`
}

// runStatus prints the driver state and an access check of each file.
func runStatus(d *lcd.Display, out io.Writer, asJSON bool) error {
	report := statusReport{
		Backend:  d.Backend(),
		Geometry: d.Geometry(),
		Checks:   d.Probe(),
	}
	status, err := d.Status()
	if err != nil {
		report.Error = err.Error()
	} else {
		report.Status = &status
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "backend:  %s\n", report.Backend)
	fmt.Fprintf(out, "geometry: %dx%d\n", report.Geometry.Rows, report.Geometry.Cols)
	if report.Status != nil {
		fmt.Fprintf(out, "cursor:   row %d, col %d\n", report.Status.Row, report.Status.Col)
		fmt.Fprintf(out, "clear:    %d\n", report.Status.ClearFlag)
	} else {
		fmt.Fprintf(out, "read-back failed: %s\n", report.Error)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tEXISTS\tWRITABLE")
	for _, c := range report.Checks {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", c.Name, c.Path, c.Exists, c.Writable)
	}
	return tw.Flush()
}

// runWatch renders the screen file now and again on every change until ctx is done.
func runWatch(ctx context.Context, d *lcd.Display, path string, logger *slog.Logger) error {
	geometry := d.Geometry()
	watcher := config.NewWatcher(path, func(p string) (lcd.Screen, error) {
		return lcd.LoadScreen(p, geometry)
	}, logger)

	watcher.OnReload(func(screen lcd.Screen) {
		logger.Info("Rendering screen", "path", path, "lines", len(screen.Lines))
		if err := d.Render(ctx, screen); err != nil {
			logger.Warn("Screen rendered with errors", "path", path, "error", err)
		}
	})

	// A bad initial file is logged by the watcher; keep watching for a fix
	_ = watcher.Reload()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Info("Watching screen file", "path", path)

	<-ctx.Done()
	return watcher.Stop()
}
