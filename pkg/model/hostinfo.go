package model

// TransportUDP is the default OSC transport advertised in HOST_INFO.
const TransportUDP = "UDP"

// HostInfo describes the server identity and the OSC endpoint it
// advertises for actual OSC traffic. It is carried only by the root
// node and serialized under the HOST_INFO key.
type HostInfo struct {
	// Name is the human-readable server name.
	Name string `json:"NAME"`

	// OSCIP is the IP address clients should send OSC messages to.
	OSCIP string `json:"OSC_IP"`

	// OSCPort is the port clients should send OSC messages to.
	OSCPort uint16 `json:"OSC_PORT"`

	// OSCTransport is the OSC transport, normally "UDP".
	OSCTransport string `json:"OSC_TRANSPORT"`

	// Extensions advertises which optional OSCQuery features this
	// server supports.
	Extensions Extensions `json:"EXTENSIONS"`
}

// NewHostInfo creates a HostInfo with the UDP transport and all
// extensions disabled.
func NewHostInfo(name, oscIP string, oscPort uint16) *HostInfo {
	return &HostInfo{
		Name:         name,
		OSCIP:        oscIP,
		OSCPort:      oscPort,
		OSCTransport: TransportUDP,
	}
}

// Extensions is the OSCQuery capability advertisement. Serialization
// always lists every known flag with an explicit boolean - clients use
// this to decide which optional query attributes are safe to request,
// so no key is ever omitted.
//
// Enabling a flag declares capability, not completeness: a node may
// omit RANGE even when the RANGE extension is advertised, and the
// serializer never gates per-node fields on these flags.
type Extensions struct {
	Access       bool `json:"ACCESS"`
	Value        bool `json:"VALUE"`
	Range        bool `json:"RANGE"`
	Description  bool `json:"DESCRIPTION"`
	Tags         bool `json:"TAGS"`
	ExtendedType bool `json:"EXTENDED_TYPE"`
	Unit         bool `json:"UNIT"`
	Critical     bool `json:"CRITICAL"`
	Clipmode     bool `json:"CLIPMODE"`
	Listen       bool `json:"LISTEN"`
	PathChanged  bool `json:"PATH_CHANGED"`
}
