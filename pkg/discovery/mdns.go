package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
	"github.com/google/uuid"
)

// MDNSAdvertiser implements the Advertiser interface using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig

	mu sync.Mutex

	// Active services
	queryServer *zeroconf.Server
	oscServer   *zeroconf.Server
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) (*MDNSAdvertiser, error) {
	return &MDNSAdvertiser{config: config}, nil
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to use all interfaces.
func (a *MDNSAdvertiser) getInterfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// serverOptions returns zeroconf server options based on config.
func (a *MDNSAdvertiser) serverOptions() []zeroconf.ServerOption {
	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}
	return opts
}

// Advertise starts advertising the server over mDNS.
func (a *MDNSAdvertiser) Advertise(ctx context.Context, info *ServiceInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if info.HTTPPort == 0 {
		return ErrMissingRequired
	}

	// Stop existing advertisements if any
	a.stopLocked()

	instanceName := InstanceName(info.Name)
	txt := []string{TXTVersion}
	ifaces := a.getInterfaces()
	opts := a.serverOptions()

	server, err := zeroconf.Register(
		instanceName,
		ServiceTypeOSCQuery,
		Domain,
		int(info.HTTPPort),
		txt,
		ifaces,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register oscjson service: %w", err)
	}
	a.queryServer = server

	if info.OSCPort == 0 {
		return nil
	}

	server, err = zeroconf.Register(
		instanceName,
		ServiceTypeOSC,
		Domain,
		int(info.OSCPort),
		txt,
		ifaces,
		opts...,
	)
	if err != nil {
		// Keep the pair consistent: no half-advertised server.
		a.stopLocked()
		return fmt.Errorf("failed to register osc service: %w", err)
	}
	a.oscServer = server
	return nil
}

// Stop stops all advertisements.
func (a *MDNSAdvertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *MDNSAdvertiser) stopLocked() {
	if a.queryServer != nil {
		a.queryServer.Shutdown()
		a.queryServer = nil
	}
	if a.oscServer != nil {
		a.oscServer.Shutdown()
		a.oscServer = nil
	}
}

// InstanceName derives the mDNS instance name from the server name,
// generating a unique fallback for unnamed servers and truncating to
// the DNS label limit.
func InstanceName(name string) string {
	if name == "" {
		name = "oscquery-" + uuid.NewString()[:8]
	}
	if len(name) > MaxInstanceNameLen {
		name = name[:MaxInstanceNameLen]
	}
	return name
}

// Browse searches for OSCQuery servers (_oscjson._tcp) until ctx is
// done, sending each discovered server on the returned channel.
func Browse(ctx context.Context) (<-chan *ServerEntry, error) {
	out := make(chan *ServerEntry)
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go func() {
		defer close(out)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := entryToServer(entry)
				select {
				case out <- svc:
				case <-ctx.Done():
					return
				}
			case <-removed:
				// A browse tool only reports appearances.
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeOSCQuery, Domain, entries, removed)
	}()

	return out, nil
}

// entryToServer converts a zeroconf entry to a ServerEntry.
func entryToServer(entry *zeroconf.ServiceEntry) *ServerEntry {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return &ServerEntry{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Addresses:    addrs,
	}
}

// Ensure MDNSAdvertiser implements Advertiser interface.
var _ Advertiser = (*MDNSAdvertiser)(nil)
