package adapters

import (
	"context"
	"errors"
	"net"
	"time"
)

const defaultTelemetryTimeout = 3 * time.Second

// DNSTelemetryAdapter probes the game's telemetry domains. Telemetry
// counts as disabled when no domain resolves to a reachable address;
// hosts-file null routes (0.0.0.0, loopback) count as blocked.
type DNSTelemetryAdapter struct {
	Resolver *net.Resolver
	Timeout  time.Duration
}

func NewDNSTelemetryAdapter() DNSTelemetryAdapter {
	return DNSTelemetryAdapter{
		Resolver: net.DefaultResolver,
		Timeout:  defaultTelemetryTimeout,
	}
}

func (a DNSTelemetryAdapter) Disabled(ctx context.Context, hosts []string) (bool, error) {
	for _, host := range hosts {
		lookupCtx, cancel := context.WithTimeout(ctx, a.Timeout)
		addrs, err := a.Resolver.LookupHost(lookupCtx, host)
		cancel()
		if err != nil {
			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				continue
			}
			return false, err
		}
		for _, addr := range addrs {
			ip := net.ParseIP(addr)
			if ip != nil && !ip.IsUnspecified() && !ip.IsLoopback() {
				return false, nil
			}
		}
	}
	return true, nil
}
