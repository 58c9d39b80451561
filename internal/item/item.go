package item

import (
	"context"

	"github.com/kettlewell/stranded/internal/domain"
)

// Item is the capability every world item implements. Apply mutates the
// player's counters and reports progress through the notifier; it never
// fails, any randomness is resolved internally. Repeatable reports whether
// the item survives an application or is consumed by it.
type Item interface {
	Apply(ctx context.Context, p *domain.Player, notify Notifier)
	Repeatable() bool
}

// Notifier receives player-facing status lines emitted during Apply.
type Notifier interface {
	Notify(ctx context.Context, line string)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(ctx context.Context, line string)

// Notify implements Notifier.
func (f NotifyFunc) Notify(ctx context.Context, line string) {
	f(ctx, line)
}

// RollFunc draws a uniform integer in [0, n). Items that need randomness
// take one at construction so tests can inject fixed sequences.
type RollFunc func(n int) int
