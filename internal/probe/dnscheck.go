package probe

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"
)

// DNSStatus summarizes a best-effort DNS triage of the target's host, run
// when a check fails at the transport level to tell "host gone" apart from
// "host resolves but refuses".
type DNSStatus struct {
	Host          string
	Class         string // "RESOLVES" | "NXDOMAIN" | "NO_A_RECORD" | "SERVFAIL_or_TIMEOUT" | "INVALID_NAME"
	IPs           []net.IP
	Nameservers   []string
	ResolverError string
}

var dnsTimeout = 3 * time.Second

func TriageDNS(target string) DNSStatus {
	s := DNSStatus{Host: extractHost(target)}
	if s.Host == "" {
		s.Class = "INVALID_NAME"
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()
	r := &net.Resolver{} // OS resolver

	ips, err := r.LookupIP(ctx, "ip", s.Host)
	if err == nil && len(ips) > 0 {
		s.IPs = ips
		s.Class = "RESOLVES"
		return s
	}
	if err != nil {
		s.ResolverError = err.Error()
		var de *net.DNSError
		if errors.As(err, &de) {
			if de.IsNotFound {
				s.Class = "NXDOMAIN"
			} else if de.IsTemporary || de.Timeout() {
				s.Class = "SERVFAIL_or_TIMEOUT"
			}
		}
	}

	// a zone with NS records but no address record is a config problem,
	// not a missing domain
	if ns, err := r.LookupNS(ctx, s.Host); err == nil && len(ns) > 0 {
		for _, n := range ns {
			s.Nameservers = append(s.Nameservers, strings.TrimSuffix(n.Host, "."))
		}
		s.Class = "NO_A_RECORD"
	}

	if s.Class == "" {
		if s.ResolverError != "" {
			s.Class = "SERVFAIL_or_TIMEOUT"
		} else {
			s.Class = "NXDOMAIN"
		}
	}
	return s
}

// extractHost pulls the hostname from a URL string
func extractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		if strings.Contains(raw, "://") {
			return ""
		}
		return strings.TrimSpace(raw)
	}
	return u.Hostname()
}
