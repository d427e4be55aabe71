package notify

import "context"

// Notifier delivers an operator alert. Sends are best-effort: callers log
// failures and move on.
type Notifier interface {
	Send(ctx context.Context, title, text string) error
}
