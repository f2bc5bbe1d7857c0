package scene

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/oliverbestmann/mat2d/gm"
	"github.com/oliverbestmann/mat2d/surface"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual gm.Vec) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)
}

func TestTransform_Matrix(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		m := NewTransform().Matrix()
		require.True(t, m.IsIdentity())
	})

	t.Run("scale, rotate, translate", func(t *testing.T) {
		tr := TransformFromXY(10, 20).
			WithRotation(math.Pi / 2).
			WithScale(gm.Vec{X: 2, Y: 2})

		m := tr.Matrix()
		requireVecInDelta(t, gm.Vec{X: 10, Y: 22}, m.Apply(gm.Vec{X: 1}))
	})

	t.Run("rotate around pivot", func(t *testing.T) {
		tr := NewTransform().
			WithRotation(math.Pi).
			WithPivot(gm.Vec{X: 5, Y: 5})

		m := tr.Matrix()
		requireVecInDelta(t, gm.Vec{X: 5, Y: 5}, m.Apply(gm.Vec{X: 5, Y: 5}))
		requireVecInDelta(t, gm.Vec{X: 10, Y: 10}, m.Apply(gm.Vec{}))
	})
}

func TestNode_AddChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")

	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(b))

	require.Same(t, root, a.Parent())
	require.Equal(t, []*Node{b}, a.Children())

	require.ErrorIs(t, b.AddChild(root), ErrCycle)
	require.ErrorIs(t, a.AddChild(a), ErrCycle)

	// reparent b to root
	require.NoError(t, root.AddChild(b))
	require.Same(t, root, b.Parent())
	require.Empty(t, a.Children())
	require.Equal(t, []*Node{a, b}, root.Children())

	require.True(t, root.RemoveChild(a))
	require.False(t, root.RemoveChild(a))
	require.Nil(t, a.Parent())
}

func TestPropagate(t *testing.T) {
	root := NewNode("root")
	root.Transform = TransformFromXY(100, 0)

	arm := NewNode("arm")
	arm.Transform = NewTransform().WithRotation(math.Pi / 2)

	hand := NewNode("hand")
	hand.Transform = TransformFromXY(10, 0).WithScale(gm.Vec{X: 3, Y: 3})

	require.NoError(t, root.AddChild(arm))
	require.NoError(t, arm.AddChild(hand))

	Propagate(root)

	// hand origin: 10 units along the rotated x axis of the arm
	requireVecInDelta(t, gm.Vec{X: 100, Y: 10}, hand.LocalToWorld(gm.Vec{}))

	// one unit in hand space is three units in arm space
	requireVecInDelta(t, gm.Vec{X: 100, Y: 13}, hand.LocalToWorld(gm.Vec{X: 1}))

	local, err := hand.WorldToLocal(gm.Vec{X: 100, Y: 13})
	require.NoError(t, err)
	requireVecInDelta(t, gm.Vec{X: 1}, local)

	// moving the root moves all descendants after the next propagation
	root.Transform.Translation = gm.Vec{X: 0, Y: 50}
	Propagate(root)
	requireVecInDelta(t, gm.Vec{X: 0, Y: 60}, hand.LocalToWorld(gm.Vec{}))
}

func TestNode_WorldToLocal(t *testing.T) {
	node := NewNode("collapsed")
	node.Transform = NewTransform().WithScale(gm.Vec{X: 0, Y: 1})
	Propagate(node)

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	_, err := node.WorldToLocal(gm.Vec{X: 1, Y: 1})
	require.ErrorIs(t, err, gm.ErrNotInvertible)
	require.ErrorContains(t, err, "collapsed")

	require.Contains(t, logs.String(), "World matrix of node is singular")
	require.Contains(t, logs.String(), "node=collapsed")
}

func TestDraw(t *testing.T) {
	root := NewNode("root")
	root.Transform = TransformFromXY(5, 5)

	child := NewNode("child")
	child.Transform = NewTransform().WithScale(gm.Vec{X: 2, Y: 2})
	require.NoError(t, root.AddChild(child))

	Propagate(root)

	rec := surface.NewRecorder()

	var visited []string
	Draw(root, rec, func(node *Node) {
		visited = append(visited, node.Name)

		current := rec.Current()
		require.True(t, current.ApproxEqual(&node.World, 1e-12))
	})

	require.Equal(t, []string{"root", "child"}, visited)
	require.Len(t, rec.Calls(), 2)

	for _, call := range rec.Calls() {
		require.Equal(t, surface.CallSetTransform, call.Kind)
	}

	require.Equal(t, surface.Call{Kind: surface.CallSetTransform, A: 2, D: 2, E: 5, F: 5}, rec.Calls()[1])
}
