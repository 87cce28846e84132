package log

import (
	"time"
)

// Event records one resolved OSCQuery request.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the request was received (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RequestID uniquely identifies the request (UUID).
	RequestID string `cbor:"2,keyasint"`

	// RemoteAddr is the client address (IP:port).
	RemoteAddr string `cbor:"3,keyasint,omitempty"`

	// Path is the OSC address that was queried.
	Path string `cbor:"4,keyasint"`

	// Attribute is the single-attribute filter, "" for full-node queries.
	Attribute string `cbor:"5,keyasint,omitempty"`

	// Status is the HTTP status code of the response.
	Status int `cbor:"6,keyasint"`

	// Duration is the resolve-and-serialize time.
	Duration time.Duration `cbor:"7,keyasint"`

	// BodyBytes is the response body size.
	BodyBytes int `cbor:"8,keyasint,omitempty"`
}

// NotFound reports whether the query missed the tree.
func (e Event) NotFound() bool {
	return e.Status == 404
}
