package commands

import (
	"context"
	"log/slog"
	"time"

	"renthub/internal/domain/reservation"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"
)

type HoldExpirer interface {
	ExpireStaleHolds(ctx context.Context, cutoff time.Time) (int64, error)
}

type MaintenanceCommands interface {
	// ExpireHolds cancels pending holds older than the hold TTL. The
	// availability read path already ignores stale holds by age; this call
	// additionally frees their rows from the overlap constraint so the dates
	// can be rebooked.
	ExpireHolds(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	reservations HoldExpirer
	clock        clock.Clock
}

func NewMaintenanceCommands(reservations HoldExpirer, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{reservations: reservations, clock: clk}
}

func (c *maintenanceCommandsImpl) ExpireHolds(ctx context.Context) (int64, error) {
	// A hold aged exactly the TTL is still active; only strictly older rows
	// are expired.
	cutoff := c.clock.Now().Add(-reservation.HoldTTL)
	expired, err := c.reservations.ExpireStaleHolds(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if expired > 0 {
		slog.Info("expired stale reservation holds", "count", expired)
	}
	return expired, nil
}
