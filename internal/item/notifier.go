package item

import (
	"context"

	"github.com/kettlewell/stranded/internal/logger"
)

// LogNotifier writes status lines to the request-scoped slog logger.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(ctx context.Context, line string) {
	logger.FromContext(ctx).Info("item notification", "line", line)
}

// Collector accumulates status lines so a caller can return them to the
// player. Not safe for concurrent use; interactions are single-threaded per
// player by contract.
type Collector struct {
	lines []string
}

// Notify implements Notifier.
func (c *Collector) Notify(_ context.Context, line string) {
	c.lines = append(c.lines, line)
}

// Lines returns the collected status lines in emission order.
func (c *Collector) Lines() []string {
	return c.lines
}

// Tee fans out each status line to every given notifier.
func Tee(notifiers ...Notifier) Notifier {
	return NotifyFunc(func(ctx context.Context, line string) {
		for _, n := range notifiers {
			n.Notify(ctx, line)
		}
	})
}
