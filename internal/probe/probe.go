package probe

import (
	"context"
	"time"
)

// Outcome classifies a single liveness check.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeHTTPError    Outcome = "http_error"
	OutcomeNetworkError Outcome = "network_error"
	OutcomeTimeout      Outcome = "timeout"
)

// Result is the outcome of one liveness check. It is logged immediately and
// never persisted.
//
// Fields:
// - StatusCode: HTTP status when a response arrived; 0 on transport failures.
// - Uptime: remote process uptime in seconds when the body carried one.
// - Warning: set when a 200 response body could not be parsed as JSON; the
//   check still counts as a success.
type Result struct {
	Target     string
	Outcome    Outcome
	StatusCode int
	LatencyMS  float64
	Uptime     *float64
	Warning    string
	Err        string
	CheckedAt  time.Time
}

func (r Result) Up() bool { return r.Outcome == OutcomeSuccess }

// Checker performs a single liveness check against a target URL.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
