// Package scene implements a small transform hierarchy on top of gm.Matrix2d.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/mat2d/gm"
)

// ErrCycle is returned by AddChild if the new child is the parent itself or one of its ancestors.
var ErrCycle = errors.New("node can not become a child of itself or its descendants")

// Node is an element of the transform hierarchy. World is only valid
// after calling Propagate on the root of the hierarchy.
type Node struct {
	Name      string
	Transform Transform

	// World transforms points from node space into world space.
	World gm.Matrix2d

	parent   *Node
	children []*Node
}

// NewNode returns a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: NewTransform(),
		World:     gm.NewMatrix2d(),
	}
}

// Parent returns the parent of n, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children of n in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild attaches child to n. If child already has a parent, it is moved.
func (n *Node) AddChild(child *Node) error {
	for ancestor := n; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			slog.Warn("Rejecting cycle in node hierarchy",
				slog.String("parent", n.Name),
				slog.String("child", child.Name))

			return fmt.Errorf("add %q to %q: %w", child.Name, n.Name, ErrCycle)
		}
	}

	if child.parent != nil {
		slog.Debug("Reparent node",
			slog.String("node", child.Name),
			slog.String("from", child.parent.Name),
			slog.String("to", n.Name))

		child.parent.RemoveChild(child)
	}

	child.parent = n
	n.children = append(n.children, child)

	return nil
}

// RemoveChild detaches child from n. It returns false if child is not a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return false
	}

	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil

	return true
}

// LocalToWorld transforms a point from node space into world space.
func (n *Node) LocalToWorld(local gm.Vec) gm.Vec {
	return n.World.Apply(local)
}

// WorldToLocal transforms a point from world space into node space.
// It fails with gm.ErrNotInvertible if the node is collapsed, e.g. scaled by zero.
func (n *Node) WorldToLocal(world gm.Vec) (gm.Vec, error) {
	inverse, ok := n.World.Inverse()
	if !ok {
		slog.Debug("World matrix of node is singular",
			slog.String("node", n.Name),
			slog.String("world", n.World.String()))

		return gm.Vec{}, fmt.Errorf("node %q: %w", n.Name, gm.ErrNotInvertible)
	}

	return inverse.Apply(world), nil
}
