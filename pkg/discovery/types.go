package discovery

import (
	"errors"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeOSCQuery is the service type for the HTTP query side.
	ServiceTypeOSCQuery = "_oscjson._tcp"

	// ServiceTypeOSC is the service type for the advertised OSC endpoint.
	ServiceTypeOSC = "_osc._udp"

	// Domain is the mDNS domain.
	Domain = "local"
)

// TXTVersion is the txtvers record value both services carry.
const TXTVersion = "txtvers=1"

// Timing constants.
const (
	// DefaultTTL is the DNS record TTL.
	DefaultTTL = 120 * time.Second

	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// MaxInstanceNameLen is the DNS label limit.
const MaxInstanceNameLen = 63

// ErrMissingRequired indicates required service info fields are empty.
var ErrMissingRequired = errors.New("missing required discovery info")

// ServiceInfo describes the advertised OSCQuery server.
type ServiceInfo struct {
	// Name is the service instance name, normally the HostInfo NAME.
	// When empty, the advertiser generates "oscquery-<short-uuid>".
	Name string

	// HTTPPort is the OSCQuery HTTP port (_oscjson._tcp).
	HTTPPort uint16

	// OSCPort is the advertised OSC endpoint port (_osc._udp).
	// Zero disables the _osc._udp advertisement.
	OSCPort uint16
}

// ServerEntry is one OSCQuery server found while browsing.
type ServerEntry struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Host is the mDNS host name.
	Host string

	// Port is the HTTP query port.
	Port uint16

	// Addresses are the resolved IPv4/IPv6 addresses.
	Addresses []string
}
