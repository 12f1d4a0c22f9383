// Package scene holds the loaded model's node hierarchy and the name index
// used to bind profile-declared node names to concrete nodes.
package scene

import (
	"encoding/json"
	"fmt"
)

// Scene owns a node hierarchy and a name index built once at load time.
// Lookups are scoped to a subtree: a node is found only if it lives under
// the given root. Multiple nodes may share a name; the first in depth-first
// order wins, matching a plain subtree walk.
type Scene struct {
	Root  *Node
	index map[string][]*Node // name -> nodes in depth-first order
}

// New builds a scene around root and indexes the whole hierarchy.
func New(root *Node) *Scene {
	s := &Scene{
		Root:  root,
		index: make(map[string][]*Node),
	}
	if root != nil {
		s.indexSubtree(root, nil)
	}
	return s
}

// Decode parses the node-hierarchy JSON sent by the renderer after it has
// loaded the model asset.
func Decode(data []byte) (*Scene, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode model hierarchy: %w", err)
	}
	if root.Name == "" {
		return nil, fmt.Errorf("decode model hierarchy: root node has no name")
	}
	return New(&root), nil
}

func (s *Scene) indexSubtree(n *Node, parent *Node) {
	n.parent = parent
	s.index[n.Name] = append(s.index[n.Name], n)
	for _, c := range n.Children {
		s.indexSubtree(c, n)
	}
}

// Find returns the first node named name anywhere in the scene, nil if absent.
func (s *Scene) Find(name string) *Node {
	if s.Root == nil {
		return nil
	}
	return s.FindUnder(s.Root, name)
}

// FindUnder returns the first node named name within root's subtree
// (root itself included), nil if absent.
func (s *Scene) FindUnder(root *Node, name string) *Node {
	for _, n := range s.index[name] {
		if isDescendant(n, root) {
			return n
		}
	}
	return nil
}

// AddNode attaches child under parent and folds it into the index, so later
// resolution passes can see nodes added after load.
func (s *Scene) AddNode(parent, child *Node) {
	parent.Children = append(parent.Children, child)
	s.indexSubtree(child, parent)
}

func isDescendant(n, root *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == root {
			return true
		}
	}
	return false
}
