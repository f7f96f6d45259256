package event

import (
	"context"
	"fmt"
	"log/slog"
)

type identified interface {
	ID() string
}

// LogChanges installs a Changed handler on m that writes every change to
// logger at debug level.
func LogChanges(logger *slog.Logger, m Observable) (Subscription, error) {
	return m.Subscribe(Changed, func(ev Event) {
		c, ok := ev.Change()
		if !ok {
			return
		}
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs := []any{
			"event", string(c.Kind),
			"model", fmt.Sprintf("%T", c.Model),
			"args", len(c.Args),
		}
		if id, ok := c.Model.(identified); ok {
			attrs = append(attrs, "id", id.ID())
		}
		if s, ok := c.Model.(fmt.Stringer); ok {
			attrs = append(attrs, "state", s.String())
		}
		logger.Debug("model changed", attrs...)
	})
}
