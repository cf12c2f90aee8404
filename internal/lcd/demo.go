package lcd

import (
	"context"
	"time"
)

// DemoHold is how long the demo leaves its text on the panel.
const DemoHold = 3 * time.Second

// DemoLines are printed by RunDemo, one per row.
var DemoLines = []string{"Hello, World!", "I2C LCD Active"}

// RunDemo clears the panel, prints DemoLines on consecutive rows, holds
// them for DemoHold and clears again. Write failures are logged by the
// Display and the sequence keeps going; only context cancellation ends it early.
func RunDemo(ctx context.Context, d *Display) error {
	d.logger.Info("HD44780 LCD demo started", "backend", d.Backend())

	_ = d.Clear(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	for row, text := range DemoLines {
		_ = d.SetCursor(ctx, row, 0)
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = d.WriteText(text)
	}

	if err := d.Sleep(ctx, DemoHold); err != nil {
		return err
	}

	_ = d.Clear(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	d.logger.Info("Demo complete")
	return nil
}
