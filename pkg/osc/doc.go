// Package osc defines the typed OSC values carried by OSCQuery endpoints.
//
// OSC 1.0/1.1 messages carry a closed set of argument types, each identified
// by a single type tag character. OSCQuery re-exposes those arguments over
// HTTP+JSON, so every variant here knows two things: its type tag (for the
// TYPE field) and its JSON encoding (for the VALUE field).
//
// # Type Tags
//
// The supported tags are:
//   - "i" Int (int32), "l" Long (int64)
//   - "f" Float (float32), "d" Double (float64)
//   - "s" String, "b" Blob, "c" Char
//   - "T"/"F" Bool (tag depends on the value)
//   - "t" TimeTag, "N" Nil, "I" Impulse
//
// # JSON Encoding
//
// Numbers encode as JSON numbers, strings as JSON strings, Bool as a JSON
// boolean. Blob encodes as an array of byte values (not base64, which is
// what encoding/json would do for a []byte). Char encodes as a one-rune
// string. Nil and Impulse encode as null.
//
// FromArgument converts arguments decoded by github.com/hypebeast/go-osc
// from real OSC packets into Values, so a server can describe live OSC
// traffic with the same types it publishes over OSCQuery.
package osc
