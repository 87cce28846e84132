package model

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/oscquery-protocol/oscquery-go/pkg/osc"
	"github.com/oscquery-protocol/oscquery-go/pkg/unit"
)

// Node is one node of the address tree. Exactly two implementations
// exist: *Group and *Leaf. The interface is sealed so the resolver can
// match exhaustively.
type Node interface {
	json.Marshaler

	// FullPath returns the full hierarchical OSC address of the node.
	// The root's full path is "/".
	FullPath() string

	// Description returns the node description, "" by default.
	Description() string

	// Access returns the node's access mode. Groups are always
	// AccessNone.
	Access() Access

	sealed()
}

// Range is the valid range of one value slot, serialized as
// {"MIN": ..., "MAX": ...}.
type Range struct {
	Min float32 `json:"MIN"`
	Max float32 `json:"MAX"`
}

// Group is an interior node: an insertion-ordered mapping of path
// segment to child node. The order children were inserted in is the
// order CONTENTS serializes in.
type Group struct {
	fullPath    string
	description string
	contents    *orderedmap.OrderedMap[string, Node]
	hostInfo    *HostInfo // root only
}

func newGroup(fullPath string) *Group {
	return &Group{
		fullPath: fullPath,
		contents: orderedmap.New[string, Node](),
	}
}

func (g *Group) sealed() {}

// FullPath returns the group's full OSC address.
func (g *Group) FullPath() string { return g.fullPath }

// Description returns the group description.
func (g *Group) Description() string { return g.description }

// Access always returns AccessNone for groups.
func (g *Group) Access() Access { return AccessNone }

// HostInfo returns the server HostInfo, or nil on non-root groups.
func (g *Group) HostInfo() *HostInfo { return g.hostInfo }

// Child returns the child at the given path segment.
func (g *Group) Child(segment string) (Node, bool) {
	return g.contents.Get(segment)
}

// Len returns the number of direct children.
func (g *Group) Len() int { return g.contents.Len() }

// Segments returns the direct child segments in insertion order.
func (g *Group) Segments() []string {
	segments := make([]string, 0, g.contents.Len())
	for pair := g.contents.Oldest(); pair != nil; pair = pair.Next() {
		segments = append(segments, pair.Key)
	}
	return segments
}

// MarshalJSON emits the group object: DESCRIPTION, FULL_PATH, ACCESS
// (always 0), CONTENTS in insertion order, and HOST_INFO on the root.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string                              `json:"DESCRIPTION"`
		FullPath    string                              `json:"FULL_PATH"`
		Access      Access                              `json:"ACCESS"`
		Contents    *orderedmap.OrderedMap[string, Node] `json:"CONTENTS"`
		HostInfo    *HostInfo                           `json:"HOST_INFO,omitempty"`
	}{
		Description: g.description,
		FullPath:    g.fullPath,
		Access:      AccessNone,
		Contents:    g.contents,
		HostInfo:    g.hostInfo,
	})
}

// Leaf is an addressable endpoint: one or more typed value slots plus
// per-slot metadata. Ranges and Units, when present, have exactly one
// entry per value slot.
type Leaf struct {
	fullPath    string
	description string
	access      Access
	typeTag     string
	values      []osc.Value
	ranges      []Range
	units       []unit.Unit
}

func (l *Leaf) sealed() {}

// FullPath returns the leaf's full OSC address.
func (l *Leaf) FullPath() string { return l.fullPath }

// Description returns the leaf description.
func (l *Leaf) Description() string { return l.description }

// Access returns the leaf's access mode.
func (l *Leaf) Access() Access { return l.access }

// TypeTag returns the OSC type tag string, one character per value
// slot (e.g. "f", "ff").
func (l *Leaf) TypeTag() string { return l.typeTag }

// Values returns the value slots.
func (l *Leaf) Values() []osc.Value { return l.values }

// Ranges returns the per-slot ranges, or nil if none were supplied.
func (l *Leaf) Ranges() []Range { return l.ranges }

// Units returns the per-slot units, or nil if none were supplied.
func (l *Leaf) Units() []unit.Unit { return l.units }

// MarshalJSON emits the leaf object: DESCRIPTION, FULL_PATH, ACCESS,
// TYPE, VALUE, and RANGE/UNIT only when supplied. VALUE, RANGE and
// UNIT are always arrays, even for single-slot leaves.
func (l *Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string      `json:"DESCRIPTION"`
		FullPath    string      `json:"FULL_PATH"`
		Access      Access      `json:"ACCESS"`
		Type        string      `json:"TYPE"`
		Value       []osc.Value `json:"VALUE"`
		Range       []Range     `json:"RANGE,omitempty"`
		Unit        []unit.Unit `json:"UNIT,omitempty"`
	}{
		Description: l.description,
		FullPath:    l.fullPath,
		Access:      l.access,
		Type:        l.typeTag,
		Value:       l.values,
		Range:       l.ranges,
		Unit:        l.units,
	})
}

// Attribute returns the named OSCQuery attribute of a node as a
// JSON-marshalable value, and whether the node carries it. Attribute
// names are the upper-case wire names (VALUE, RANGE, ACCESS, ...).
// Unknown names and attributes the node variant does not have (TYPE on
// a group, RANGE on a rangeless leaf) report false.
func Attribute(n Node, name string) (any, bool) {
	switch name {
	case "FULL_PATH":
		return n.FullPath(), true
	case "DESCRIPTION":
		return n.Description(), true
	case "ACCESS":
		return n.Access(), true
	}

	switch node := n.(type) {
	case *Group:
		switch name {
		case "CONTENTS":
			return node.contents, true
		case "HOST_INFO":
			if node.hostInfo != nil {
				return node.hostInfo, true
			}
		}
	case *Leaf:
		switch name {
		case "TYPE":
			return node.typeTag, true
		case "VALUE":
			return node.values, true
		case "RANGE":
			if node.ranges != nil {
				return node.ranges, true
			}
		case "UNIT":
			if node.units != nil {
				return node.units, true
			}
		}
	}
	return nil, false
}
