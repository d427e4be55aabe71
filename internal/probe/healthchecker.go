package probe

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

const maxBodyBytes = 1 << 20

// HealthChecker issues one GET per check and classifies the outcome. The
// per-check deadline lives here so callers can fire checks without extra
// bookkeeping; cancelling the parent context aborts an in-flight request.
type HealthChecker struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewHealthChecker(timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HealthChecker{Client: &http.Client{}, Timeout: timeout}
}

type pongBody struct {
	Uptime *float64 `json:"uptime"`
}

func (h *HealthChecker) Check(ctx context.Context, target string) Result {
	res := Result{Target: target, CheckedAt: time.Now().UTC()}

	cctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(cctx, http.MethodGet, target, nil)
	if err != nil {
		res.Outcome = OutcomeNetworkError
		res.Err = err.Error()
		return res
	}

	resp, err := h.Client.Do(req)
	res.LatencyMS = time.Since(start).Seconds() * 1000
	if err != nil {
		res.Outcome = classifyTransport(err)
		res.Err = err.Error()
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeHTTPError
		res.Err = resp.Status
		return res
	}

	res.Outcome = OutcomeSuccess
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Warning = "body read failed: " + err.Error()
		return res
	}
	var pong pongBody
	if err := json.Unmarshal(body, &pong); err != nil {
		res.Warning = "unparseable body: " + err.Error()
		return res
	}
	res.Uptime = pong.Uptime
	return res
}

func classifyTransport(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return OutcomeTimeout
	}
	return OutcomeNetworkError
}
