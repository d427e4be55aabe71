package pinger

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/probe"
)

type Config struct {
	TargetURL string        // backend base URL
	Path      string        // health endpoint path, default "/api/ping"
	Interval  time.Duration // spacing between check starts, default 5m
}

// Pinger keeps a hosted backend awake by hitting its health endpoint on a
// fixed-delay schedule. No outcome is ever fatal to the loop: every check is
// classified, logged and forgotten until the next tick.
type Pinger struct {
	logger   *zap.Logger
	checker  probe.Checker
	alerts   *AlertTracker // nil when alerting is disabled
	url      string
	interval time.Duration
}

func New(logger *zap.Logger, checker probe.Checker, alerts *AlertTracker, cfg Config) *Pinger {
	path := cfg.Path
	if path == "" {
		path = "/api/ping"
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Pinger{
		logger:   logger,
		checker:  checker,
		alerts:   alerts,
		url:      strings.TrimRight(cfg.TargetURL, "/") + path,
		interval: interval,
	}
}

// URL returns the composed check URL.
func (p *Pinger) URL() string { return p.url }

// Run performs one immediate check, then one per interval until ctx is
// cancelled. Ticks never wait for the previous check: a slow or hung request
// does not delay the schedule, so checks may overlap in flight. Cancellation
// stops the schedule without awaiting in-flight requests.
func (p *Pinger) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	go p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pinger_stopped", zap.String("target", p.url))
			return
		case <-t.C:
			go p.tick(ctx)
		}
	}
}

func (p *Pinger) tick(ctx context.Context) {
	p.logger.Debug("ping_start", zap.String("target", p.url))
	res := p.checker.Check(ctx, p.url)
	if ctx.Err() != nil {
		// shutdown aborted the request; not a real outcome
		p.logger.Debug("ping_aborted", zap.String("target", p.url))
		return
	}
	p.logResult(res)
	if p.alerts != nil {
		p.alerts.Observe(ctx, res)
	}
}

func (p *Pinger) logResult(res probe.Result) {
	fields := []zap.Field{
		zap.String("target", res.Target),
		zap.String("outcome", string(res.Outcome)),
		zap.Float64("latency_ms", res.LatencyMS),
	}

	switch res.Outcome {
	case probe.OutcomeSuccess:
		if res.Warning != "" {
			p.logger.Warn("ping_ok_unparseable", append(fields, zap.String("warning", res.Warning))...)
			return
		}
		if res.Uptime != nil {
			fields = append(fields, zap.Float64("remote_uptime_s", *res.Uptime))
		}
		p.logger.Info("ping_ok", fields...)
	case probe.OutcomeHTTPError:
		p.logger.Warn("ping_http_error", append(fields, zap.Int("status", res.StatusCode))...)
	case probe.OutcomeTimeout:
		p.logger.Warn("ping_timeout", append(fields, zap.String("error", res.Err))...)
	case probe.OutcomeNetworkError:
		dns := probe.TriageDNS(res.Target)
		p.logger.Warn("ping_network_error", append(fields,
			zap.String("error", res.Err),
			zap.String("dns_class", dns.Class),
			zap.String("dns_resolver_error", dns.ResolverError),
		)...)
	}
}
