package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// remoteNode is the client-side view of one tree node. CONTENTS keeps
// the server's child order.
type remoteNode struct {
	Description string                                      `json:"DESCRIPTION"`
	FullPath    string                                      `json:"FULL_PATH"`
	Access      int                                         `json:"ACCESS"`
	Type        string                                      `json:"TYPE"`
	Value       []any                                       `json:"VALUE"`
	Contents    *orderedmap.OrderedMap[string, *remoteNode] `json:"CONTENTS"`
}

// IsGroup reports whether the node is a group. Groups have no TYPE.
func (n *remoteNode) IsGroup() bool {
	return n.Type == ""
}

// client queries one OSCQuery server.
type client struct {
	base string
	http *http.Client
}

func newClient(host string, timeout time.Duration) *client {
	return &client{
		base: "http://" + host,
		http: &http.Client{Timeout: timeout},
	}
}

// Get fetches the raw JSON for a path, optionally filtered to one
// attribute.
func (c *client) Get(path, attr string) ([]byte, error) {
	u := c.base + (&url.URL{Path: path}).EscapedPath()
	if attr != "" {
		u += "?" + attr
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	return body, nil
}

// Node fetches and decodes the node at path.
func (c *client) Node(path string) (*remoteNode, error) {
	body, err := c.Get(path, "")
	if err != nil {
		return nil, err
	}
	var node remoteNode
	if err := json.Unmarshal(body, &node); err != nil {
		return nil, fmt.Errorf("decoding node: %w", err)
	}
	return &node, nil
}
