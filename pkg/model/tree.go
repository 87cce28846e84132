package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oscquery-protocol/oscquery-go/pkg/osc"
	"github.com/oscquery-protocol/oscquery-go/pkg/unit"
)

// Tree errors.
var (
	// ErrInvalidPath indicates a parameter path that does not start
	// with '/' or contains an empty segment.
	ErrInvalidPath = errors.New("invalid OSC path")

	// ErrPathConflict indicates an insertion whose target is already
	// occupied, or whose path descends through an existing leaf.
	ErrPathConflict = errors.New("path conflict")

	// ErrFrozen indicates an insertion into a tree that has been
	// published.
	ErrFrozen = errors.New("tree is frozen")

	// ErrNotFound indicates a query path that resolves to no node.
	ErrNotFound = errors.New("no node at path")

	// ErrMissingValue indicates a parameter without an initial value.
	ErrMissingValue = errors.New("parameter has no value")
)

// Parameter describes one endpoint to insert into the tree. It is a
// plain configuration value: fill in the fields, pass it to Insert,
// discard it. Only Path and Value are required.
type Parameter struct {
	// Path is the full OSC address of the endpoint, e.g. "/synth/volume".
	Path string

	// Value is the initial typed value. Its variant determines the
	// endpoint's TYPE tag.
	Value osc.Value

	// Description is optional human-readable documentation.
	Description string

	// Access is the access mode. Nil means AccessReadWrite; set it
	// explicitly to restrict access or, with AccessNone, to publish
	// an endpoint that advertises no access at all.
	Access *Access

	// Range optionally bounds the value. Both bounds travel together.
	Range *Range

	// Unit optionally names the value's measurement unit.
	Unit unit.Unit
}

// Tree is the mutable build-phase handle for an address tree. Build it
// single-threaded, then Freeze it before handing it to the transport;
// a frozen tree is safe for unlimited concurrent readers.
type Tree struct {
	root   *Group
	frozen bool
}

// New creates a tree whose root group has full path "/" and carries
// the given HostInfo. hostInfo may be nil.
func New(hostInfo *HostInfo) *Tree {
	root := newGroup("/")
	root.hostInfo = hostInfo
	return &Tree{root: root}
}

// Root returns the root group.
func (t *Tree) Root() *Group { return t.root }

// HostInfo returns the root's HostInfo, or nil.
func (t *Tree) HostInfo() *HostInfo { return t.root.hostInfo }

// Freeze publishes the tree: all future Inserts fail with ErrFrozen.
// Freezing is idempotent.
func (t *Tree) Freeze() { t.frozen = true }

// Frozen reports whether the tree has been published.
func (t *Tree) Frozen() bool { return t.frozen }

// Insert adds a leaf endpoint at p.Path, creating intermediate groups
// as needed. A failed insertion leaves the tree exactly as it was:
// conflicts are detected before any group is created.
func (t *Tree) Insert(p Parameter) error {
	if t.frozen {
		return ErrFrozen
	}
	if p.Value == nil {
		return fmt.Errorf("%w: %q", ErrMissingValue, p.Path)
	}

	segments, err := splitPath(p.Path)
	if err != nil {
		return err
	}

	// First pass: walk as deep as the existing tree goes and detect
	// conflicts, so a failure never leaves partially created groups.
	parent := t.root
	created := len(segments) - 1 // index from which groups must be created
	for i, segment := range segments[:len(segments)-1] {
		child, ok := parent.Child(segment)
		if !ok {
			created = i
			break
		}
		group, ok := child.(*Group)
		if !ok {
			return fmt.Errorf("%w: %s is a leaf", ErrPathConflict, child.FullPath())
		}
		parent = group
	}
	if created == len(segments)-1 {
		// All intermediate groups exist; the final segment must be free.
		if _, ok := parent.Child(segments[len(segments)-1]); ok {
			return fmt.Errorf("%w: %s already exists", ErrPathConflict, p.Path)
		}
	}

	// Second pass: create the missing groups and attach the leaf.
	for _, segment := range segments[created : len(segments)-1] {
		group := newGroup(childPath(parent.fullPath, segment))
		parent.contents.Set(segment, group)
		parent = group
	}

	access := AccessReadWrite
	if p.Access != nil {
		access = *p.Access
	}
	leaf := &Leaf{
		fullPath:    p.Path,
		description: p.Description,
		access:      access,
		typeTag:     p.Value.TypeTag(),
		values:      []osc.Value{p.Value},
	}
	if p.Range != nil {
		leaf.ranges = []Range{*p.Range}
	}
	if !p.Unit.IsZero() {
		leaf.units = []unit.Unit{p.Unit}
	}
	parent.contents.Set(segments[len(segments)-1], leaf)
	return nil
}

// Lookup resolves an OSC address to its node. "" and "/" resolve to
// the root; a single trailing slash is ignored. Returns ErrNotFound
// when any segment is missing.
func (t *Tree) Lookup(path string) (Node, error) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return t.root, nil
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	var node Node = t.root
	for _, segment := range strings.Split(path[1:], "/") {
		group, ok := node.(*Group)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		child, ok := group.Child(segment)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		node = child
	}
	return node, nil
}

// splitPath validates a parameter path and splits it into segments.
func splitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrInvalidPath, path)
	}
	segments := strings.Split(path[1:], "/")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// childPath derives a child's full path from its parent's.
func childPath(parentPath, segment string) string {
	if parentPath == "/" {
		return "/" + segment
	}
	return parentPath + "/" + segment
}
