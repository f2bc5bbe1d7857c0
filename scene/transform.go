package scene

import "github.com/oliverbestmann/mat2d/gm"

// Transform describes the placement of a node relative to its parent.
// A point in node space is scaled first, then rotated around Pivot and
// finally moved by Translation.
type Transform struct {
	Translation gm.Vec
	Scale       gm.Vec
	Rotation    gm.Rad

	// Pivot is the point in node space that Rotation rotates around.
	Pivot gm.Vec
}

// NewTransform returns the identity transform with a scale of one.
func NewTransform() Transform {
	return Transform{
		Scale: gm.VecOne,
	}
}

// TransformFromXY returns a transform that only translates by (x, y).
func TransformFromXY(x, y float64) Transform {
	return Transform{
		Scale:       gm.VecOne,
		Translation: gm.Vec{X: x, Y: y},
	}
}

// WithTranslation returns a copy of t with the given translation.
func (t Transform) WithTranslation(translation gm.Vec) Transform {
	t.Translation = translation
	return t
}

// WithRotation returns a copy of t with the given rotation.
func (t Transform) WithRotation(rotation gm.Rad) Transform {
	t.Rotation = rotation
	return t
}

// WithScale returns a copy of t with the given scale.
func (t Transform) WithScale(scale gm.Vec) Transform {
	t.Scale = scale
	return t
}

// WithPivot returns a copy of t with the given rotation pivot.
func (t Transform) WithPivot(pivot gm.Vec) Transform {
	t.Pivot = pivot
	return t
}

// Matrix returns the local matrix of this transform.
func (t Transform) Matrix() gm.Matrix2d {
	m := gm.NewMatrix2d()
	m.TranslateBy(t.Translation.X, t.Translation.Y)

	if t.Rotation != 0 {
		m.SetRotateOrigin(t.Pivot).RotateBy(t.Rotation)
	}

	if t.Scale != gm.VecOne {
		m.ScaleBy(t.Scale.X, t.Scale.Y)
	}

	return m
}
