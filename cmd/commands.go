package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/lcdctl/internal/lcd"
	"github.com/smazurov/lcdctl/internal/logging"
	"github.com/smazurov/lcdctl/internal/version"
	"github.com/spf13/cobra"
)

// AddCommands attaches every display subcommand to root.
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		CreateDemoCmd(),
		CreateClearCmd(),
		CreateCursorCmd(),
		CreateWriteCmd(),
		CreateParamCmd(),
		CreateStatusCmd(),
		CreateWatchCmd(),
		CreateVersionCmd(),
	)
}

// NewDisplay builds a Display from the CLI options. CLI commands do not
// publish events, so the bus is nil.
func NewDisplay(opts *Options) *lcd.Display {
	return lcd.New(opts.DisplayOptions(), nil, logging.GetLogger("lcd"))
}

// signalContext is cancelled on Ctrl-C or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// exitOnError logs err and exits non-zero.
func exitOnError(msg string, err error) {
	if err == nil {
		return
	}
	logging.GetLogger("main").Error(msg, "error", err)
	os.Exit(1)
}

// CreateDemoCmd creates the demo command.
func CreateDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the hello-world demo",
		Long: `Clears the display, prints "Hello, World!" on row 0 and "I2C LCD Active" on row 1, ` +
			`holds for three seconds and clears again. Write failures are logged and the demo carries on.`,
		Args: cobra.NoArgs,
		Run: humacli.WithOptions(func(cmd *cobra.Command, _ []string, opts *Options) {
			ctx, cancel := signalContext(cmd)
			defer cancel()

			err := lcd.RunDemo(ctx, NewDisplay(opts))
			if errors.Is(err, context.Canceled) {
				logging.GetLogger("main").Info("Demo interrupted")
				return
			}
			exitOnError("Demo failed", err)
		}),
	}
}

// CreateClearCmd creates the clear command.
func CreateClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the display",
		Args:  cobra.NoArgs,
		Run: humacli.WithOptions(func(cmd *cobra.Command, _ []string, opts *Options) {
			ctx, cancel := signalContext(cmd)
			defer cancel()
			exitOnError("Clear failed", NewDisplay(opts).Clear(ctx))
		}),
	}
}

// CreateCursorCmd creates the cursor command.
func CreateCursorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cursor ROW COL",
		Short: "Move the cursor",
		Args:  cobra.ExactArgs(2),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			ctx, cancel := signalContext(cmd)
			defer cancel()
			exitOnError("Cursor move failed", runCursor(ctx, NewDisplay(opts), args))
		}),
	}
}

// CreateWriteCmd creates the write command.
func CreateWriteCmd() *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "write TEXT",
		Short: "Write text at the cursor",
		Long:  `Writes TEXT at the current cursor position, or at --row/--col when both are given. "\n" moves to the next line.`,
		Args:  cobra.ExactArgs(1),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			rowSet, colSet := cmd.Flags().Changed("row"), cmd.Flags().Changed("col")
			if rowSet != colSet {
				exitOnError("Write failed", errors.New("--row and --col must be given together"))
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()
			exitOnError("Write failed", runWrite(ctx, NewDisplay(opts), args[0], row, col, rowSet))
		}),
	}

	cmd.Flags().IntVar(&row, "row", 0, "Row to move to before writing")
	cmd.Flags().IntVar(&col, "col", 0, "Column to move to before writing")
	return cmd
}

// CreateParamCmd creates the param command.
func CreateParamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "param NAME VALUE",
		Short: "Write a raw driver parameter",
		Long:  `Writes VALUE to lcd_clear_flag, lcd_row or lcd_col. The lcd_ prefix is optional.`,
		Args:  cobra.ExactArgs(2),
		Run: humacli.WithOptions(func(_ *cobra.Command, args []string, opts *Options) {
			exitOnError("Parameter write failed", runParam(NewDisplay(opts), args[0], args[1]))
		}),
	}
}

// CreateStatusCmd creates the status command.
func CreateStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show driver parameters and file access",
		Args:  cobra.NoArgs,
		Run: humacli.WithOptions(func(cmd *cobra.Command, _ []string, opts *Options) {
			exitOnError("Status failed", runStatus(NewDisplay(opts), cmd.OutOrStdout(), asJSON))
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}

// CreateWatchCmd creates the watch command.
func CreateWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Render a screen file and redraw it whenever it changes",
		Long: `Loads a TOML screen file (clear = true, [[lines]] with row, col and text), draws it, ` +
			`then redraws on every change until interrupted.`,
		Args: cobra.ExactArgs(1),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			ctx, cancel := signalContext(cmd)
			defer cancel()
			exitOnError("Watch failed", runWatch(ctx, NewDisplay(opts), args[0], logging.GetLogger("watch")))
		}),
	}
}

// CreateVersionCmd creates the version command.
func CreateVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().Long())
		},
	}
}
