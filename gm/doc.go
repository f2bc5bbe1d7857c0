// Package gm (stands for geometry math) provides the geometry primitives of mat2d.
//
// The central type is Matrix2d, a 3x3 homogeneous matrix describing an affine
// transformation of the plane. Matrix2d values are mutated in place, every mutating
// method returns the receiver so that calls can be chained:
//
//	m := gm.NewMatrix2d()
//	m.TranslateBy(10, 20).RotateBy(gm.DegToRad(45)).ScaleBy(2, 2)
//
// There are two families of transform methods. The *To methods (RotateTo, ScaleTo,
// TranslateTo) overwrite only the cells of one component and leave everything else
// untouched. The *By methods (RotateBy, ScaleBy, TranslateBy) compose a new transform
// with whatever the matrix already describes.
//
// It also includes a simple 2d vector type called Vec, an axis aligned Rect and a
// type named Rad to represent angle values in radian.
package gm
