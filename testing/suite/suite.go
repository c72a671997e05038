package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/battleship/internal/battleship"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rules battleship.Rules
}

// New - context with a deadline, a silent logger and a single patrol boat fleet on a 10x10 board.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rules := battleship.DefaultRules()
	rules.Fleet = []battleship.ShipSpec{{Name: "Patrol Boat", Size: 2}}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rules:  rules,
	}
}
