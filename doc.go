// Package oscquery implements the server side of the OSCQuery
// protocol: a typed OSC address tree published over HTTP+JSON, with
// mDNS discovery and query logging.
//
// The packages under pkg/ are the building blocks:
//
//   - pkg/osc: typed OSC values and type tags
//   - pkg/unit: the UNIT attribute taxonomy
//   - pkg/model: the address tree, HOST_INFO, and JSON serialization
//   - pkg/query: path and attribute resolution
//   - pkg/service: the HTTP transport
//   - pkg/discovery: mDNS advertising and browsing
//   - pkg/log: machine-readable query logging
//
// The cmd/ directory holds a reference server (oscquery-server), an
// interactive client (oscquery-explore), and a query log analyzer
// (oscquery-log).
package oscquery
