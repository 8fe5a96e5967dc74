package treekv

import (
	"time"
)

// Node is a wire-level store entry. A node is either a leaf carrying a
// value or a directory carrying child nodes, never both. CreatedIndex and
// ModifiedIndex are the store-assigned version counters used as
// optimistic-concurrency tokens.
type Node struct {
	// Key is the absolute path of the node.
	Key string `json:"key"`
	// Value is the leaf value. Nil for directories and for directory
	// children whose contents were not fetched.
	Value *string `json:"value,omitempty"`
	// Dir marks directory nodes.
	Dir bool `json:"dir,omitempty"`
	// Nodes holds the children of a directory listing.
	Nodes []*Node `json:"nodes,omitempty"`
	// CreatedIndex is the store index at which the node was created.
	CreatedIndex uint64 `json:"createdIndex"`
	// ModifiedIndex is the store index of the node's last modification.
	ModifiedIndex uint64 `json:"modifiedIndex"`
	// TTL is the remaining time-to-live in seconds, if the node expires.
	TTL *int64 `json:"ttl,omitempty"`
	// Expiration is the absolute expiration time, if the node expires.
	Expiration *time.Time `json:"expiration,omitempty"`
}

// Project flattens a node tree into the simplified caller-facing value:
// nil for an absent value, a string for a leaf, or a map from immediate
// child name to projected child value for a directory (nested arbitrarily
// deep when the listing was recursive).
//
// A directory listed non-recursively yields children with neither value
// nor nodes; those project to nil, signaling "a directory exists here but
// its contents were not fetched".
func Project(n *Node) any {
	if n == nil {
		return nil
	}
	strip := len(n.Key) + 1
	if n.Key == "" || n.Key == "/" {
		// Children of the root only shed the leading slash.
		strip = 1
	}
	return projectNode(n, strip)
}

// projectNode projects a node, stripping strip characters from each child
// key to obtain its name relative to the parent.
func projectNode(n *Node, strip int) any {
	if n.Nodes == nil {
		if n.Value == nil {
			return nil
		}
		return *n.Value
	}
	children := make(map[string]any, len(n.Nodes))
	for _, child := range n.Nodes {
		name := child.Key
		if strip <= len(name) {
			name = name[strip:]
		}
		children[name] = projectNode(child, len(child.Key)+1)
	}
	return children
}
