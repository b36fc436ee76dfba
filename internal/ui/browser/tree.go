// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import "strings"

// Node is one folder in the lazily-loaded remote tree.
type Node struct {
	Name     string // display name, no trailing slash
	Path     string // path relative to the remote root, "" for the root
	Depth    int
	Parent   *Node
	Children []*Node

	Loaded   bool // children have been fetched
	Loading  bool // a fetch is in flight for this node
	Expanded bool
}

// newRoot builds the synthetic root node for a remote. The root itself is
// never rendered; its children are the remote's top-level folders.
func newRoot() *Node {
	return &Node{Path: "", Depth: -1, Expanded: true}
}

// addChildren attaches freshly listed folder names under n and marks it
// loaded. Existing children are replaced, not merged: a reload after a
// config change starts clean.
func (n *Node) addChildren(names []string) {
	n.Children = n.Children[:0]
	for _, name := range names {
		n.Children = append(n.Children, &Node{
			Name:   name,
			Path:   joinPath(n.Path, name),
			Depth:  n.Depth + 1,
			Parent: n,
		})
	}
	n.Loaded = true
	n.Loading = false
}

// joinPath joins remote-relative path segments with forward slashes,
// which is what rclone expects on every platform.
func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}

// flatten returns the visible rows of the tree in render order. Children of
// a collapsed node are skipped; a loading node contributes a placeholder
// child so the user sees where work is happening.
func flatten(root *Node) []*Node {
	var rows []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			rows = append(rows, c)
			if c.Expanded {
				if c.Loading {
					rows = append(rows, &Node{
						Name:    "Loading...",
						Depth:   c.Depth + 1,
						Parent:  c,
						Loading: true,
					})
				} else {
					walk(c)
				}
			}
		}
	}
	walk(root)
	return rows
}

// indent renders the tree prefix for a node at the given depth.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
