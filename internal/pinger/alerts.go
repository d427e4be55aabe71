package pinger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/notify"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/probe"
)

// AlertTracker turns a stream of check results into operator notifications.
// It alerts on up→down transitions (subject to a cooldown so a flapping
// backend doesn't spam the channel) and on recovery. The mutex matters:
// overlapping ticks may observe concurrently.
type AlertTracker struct {
	logger          *zap.Logger
	notifier        notify.Notifier
	cooldown        time.Duration
	alertOnRecovery bool

	mu       sync.Mutex
	seen     bool
	lastUp   bool
	lastSent time.Time
}

func NewAlertTracker(logger *zap.Logger, n notify.Notifier, cooldown time.Duration, alertOnRecovery bool) *AlertTracker {
	return &AlertTracker{
		logger:          logger,
		notifier:        n,
		cooldown:        cooldown,
		alertOnRecovery: alertOnRecovery,
	}
}

// Observe records one check outcome and decides whether to notify. Sends are
// best-effort: a failed delivery is logged and never retried.
func (a *AlertTracker) Observe(ctx context.Context, res probe.Result) {
	up := res.Up()
	now := time.Now()

	a.mu.Lock()
	wasDown := a.seen && !a.lastUp
	changed := !a.seen || a.lastUp != up
	cooled := a.lastSent.IsZero() || now.Sub(a.lastSent) >= a.cooldown

	downAlert := changed && !up && cooled
	recoveryAlert := wasDown && up && a.alertOnRecovery // bypasses cooldown

	a.seen = true
	a.lastUp = up
	if downAlert || recoveryAlert {
		a.lastSent = now
	}
	a.mu.Unlock()

	if !downAlert && !recoveryAlert {
		return
	}

	title := "🔴 Velour backend DOWN"
	if up {
		title = "🟢 Velour backend RECOVERED"
	}
	text := fmt.Sprintf(
		"Target: %s\nOutcome: %s\nHTTP: %s\nLatency: %.0f ms\nError: %s\nChecked: %s",
		res.Target, res.Outcome, statusText(res.StatusCode), res.LatencyMS,
		res.Err, res.CheckedAt.Format(time.RFC3339),
	)
	if err := a.notifier.Send(ctx, title, text); err != nil {
		a.logger.Warn("alert_send_failed", zap.Error(err))
	}
}

func statusText(code int) string {
	if code == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", code)
}
