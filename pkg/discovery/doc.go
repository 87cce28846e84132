// Package discovery implements mDNS/DNS-SD advertisement for OSCQuery
// servers.
//
// OSCQuery clients find servers by browsing two service types:
//
// # Query Discovery (_oscjson._tcp)
//
// The HTTP side of the server. Clients resolve this service, then GET
// the advertised host:port to enumerate the address tree. Instance
// name is the HostInfo NAME.
//
// # OSC Discovery (_osc._udp)
//
// The OSC endpoint named by HOST_INFO's OSC_IP/OSC_PORT. Advertised
// with the same instance name so clients can pair the two services.
//
// Both advertisements carry a "txtvers=1" TXT record.
package discovery
