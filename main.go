package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/lcdctl/cmd"
	"github.com/smazurov/lcdctl/internal/api"
	"github.com/smazurov/lcdctl/internal/config"
	"github.com/smazurov/lcdctl/internal/events"
	"github.com/smazurov/lcdctl/internal/lcd"
	"github.com/smazurov/lcdctl/internal/logging"
	"github.com/smazurov/lcdctl/internal/metrics"
	"github.com/smazurov/lcdctl/internal/version"
)

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *cmd.Options) {
		// Load configuration automatically; explicit flags win over file and env
		if loadErr := config.LoadConfig(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(opts.LoggingConfig())
		logger := logging.GetLogger("main")

		eventBus := events.New()

		// Forward buffered log entries to /api/logs/stream subscribers
		logging.SetLogCallback(func(entry logging.LogEntry) {
			eventBus.Publish(events.LogEntryEvent{
				Timestamp:  entry.Timestamp.Format(time.RFC3339Nano),
				Level:      entry.Level,
				Module:     entry.Module,
				Message:    entry.Message,
				Attributes: entry.Attributes,
			})
		})

		var server *api.Server
		var unsubscribeMetrics func()

		hooks.OnStart(func() {
			display := lcd.New(opts.DisplayOptions(), eventBus, logging.GetLogger("lcd"))
			logger.Info("lcdctl starting",
				"version", version.String(),
				"backend", display.Backend(),
				"sysfs_base", opts.SysfsBase,
				"device", opts.DevicePath)

			apiOpts := &api.Options{
				Display:      display,
				EventBus:     eventBus,
				AuthUsername: opts.AuthUsername,
				AuthPassword: opts.AuthPassword,
			}
			if opts.MetricsEnabled {
				unsubscribeMetrics = metrics.Subscribe(eventBus)
				apiOpts.MetricsHandler = metrics.Handler()
			}

			server = api.NewServer(apiOpts)
			if startErr := server.Start(opts.Port); startErr != nil {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if server != nil {
				if stopErr := server.Stop(ctx); stopErr != nil {
					logger.Error("Error stopping HTTP server", "error", stopErr)
				}
			}
			if unsubscribeMetrics != nil {
				unsubscribeMetrics()
			}
		})
	})

	root := cli.Root()
	root.Use = "lcdctl"
	root.Short = "Control an HD44780 character LCD through the hd44780_driver kernel module"
	root.Version = version.String()
	cmd.AddCommands(root)

	cli.Run()
}
