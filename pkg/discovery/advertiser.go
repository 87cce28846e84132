package discovery

import (
	"context"
	"time"
)

// Advertiser provides mDNS service advertising capabilities.
type Advertiser interface {
	// Advertise starts advertising the server. It registers the
	// _oscjson._tcp service and, when info.OSCPort is non-zero, the
	// matching _osc._udp service. Advertising continues until Stop.
	Advertise(ctx context.Context, info *ServiceInfo) error

	// Stop stops all advertisements. Stopping an advertiser with
	// nothing advertised is a no-op.
	Stop()
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       DefaultTTL,
	}
}
