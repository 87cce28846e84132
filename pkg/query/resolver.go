// Package query resolves OSCQuery HTTP requests against a published
// address tree and serializes the JSON responses.
//
// A request is a path plus an optional single attribute filter (the
// raw query string, e.g. "?VALUE"). Resolution is a stateless tree
// walk; any number of queries may run concurrently over a frozen tree.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/oscquery-protocol/oscquery-go/pkg/model"
)

// AttrHostInfo is the root-scoped pseudo-attribute that returns the
// server's HostInfo regardless of the request path.
const AttrHostInfo = "HOST_INFO"

// emptyObject is the response for a filtered query on a node that does
// not carry the requested attribute. Absence of optional metadata is
// not a protocol error.
var emptyObject = []byte("{}")

// Resolver answers OSCQuery requests for one published tree.
type Resolver struct {
	tree *model.Tree
}

// New creates a resolver over tree. The tree must already be frozen;
// the resolver performs no locking of its own.
func New(tree *model.Tree) *Resolver {
	return &Resolver{tree: tree}
}

// Query resolves path and serializes the response body.
//
// With an empty attr it returns the full node object, groups recursing
// into CONTENTS in insertion order. With attr set it returns
// {"<ATTR>": <value>} when the node carries the attribute and {}
// otherwise. attr == "HOST_INFO" short-circuits path resolution
// entirely, per the protocol's discovery convention.
//
// An unresolvable path yields model.ErrNotFound; the transport maps
// that to its not-found response.
func (r *Resolver) Query(path, attr string) ([]byte, error) {
	if attr == AttrHostInfo {
		info := r.tree.HostInfo()
		if info == nil {
			return emptyObject, nil
		}
		return json.Marshal(info)
	}

	node, err := r.tree.Lookup(path)
	if err != nil {
		return nil, err
	}

	if attr == "" {
		return json.Marshal(node)
	}

	value, ok := model.Attribute(node, attr)
	if !ok {
		return emptyObject, nil
	}
	body, err := json.Marshal(map[string]any{attr: value})
	if err != nil {
		return nil, fmt.Errorf("serializing %s of %s: %w", attr, node.FullPath(), err)
	}
	return body, nil
}
