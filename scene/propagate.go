package scene

import "github.com/oliverbestmann/mat2d/gm"

// Propagate recomputes the World matrix of root and all of its descendants.
// The root is placed in world space by its own transform, every child is placed
// relative to its parent: child.World = parent.World · child.Transform.
func Propagate(root *Node) {
	root.World = root.Transform.Matrix()

	for _, child := range root.children {
		propagate(child, &root.World)
	}
}

func propagate(node *Node, parentWorld *gm.Matrix2d) {
	local := node.Transform.Matrix()
	node.World.CopyFrom(parentWorld).Multiply(&local)

	for _, child := range node.children {
		propagate(child, &node.World)
	}
}

// Walk calls fn for root and all of its descendants in depth first order,
// parents before their children.
func Walk(root *Node, fn func(node *Node)) {
	fn(root)

	for _, child := range root.children {
		Walk(child, fn)
	}
}

// Draw sets the world transform of every node on ctx before calling fn for that node.
func Draw(root *Node, ctx gm.DrawingContext, fn func(node *Node)) {
	Walk(root, func(node *Node) {
		node.World.SetContextTransform(ctx)
		fn(node)
	})
}
