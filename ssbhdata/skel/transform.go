package skel

import (
	"errors"
	"fmt"
	"math"
)

// Transforms are row-major with row vectors: a point p maps to [p 1] * M and
// a bone's world transform is its relative transform times the parent world.

var (
	ErrSingular    = errors.New("matrix is not invertible")
	ErrCycle       = errors.New("cycle in bone hierarchy")
	ErrParentIndex = errors.New("parent index out of range")
	ErrBoneIndex   = errors.New("bone index out of range")
)

// CalculateRelativeTransform returns the transform relative to the parent
// bone: world * inverse(parentWorld). A nil parent returns world unchanged.
func CalculateRelativeTransform(world [4][4]float32, parentWorld *[4][4]float32) ([4][4]float32, error) {
	if parentWorld == nil {
		return world, nil
	}

	inv, err := Inverse(*parentWorld)
	if err != nil {
		return [4][4]float32{}, err
	}

	return Mul(world, inv), nil
}

// CalculateWorldTransform walks the parent chain of bone i.
func (s SkelData) CalculateWorldTransform(i int) ([4][4]float32, error) {
	if i < 0 || i >= len(s.Bones) {
		return [4][4]float32{}, fmt.Errorf("%w: %d", ErrBoneIndex, i)
	}

	world := s.Bones[i].Transform

	for seen := 0; s.Bones[i].ParentIndex != nil; seen++ {
		if seen >= len(s.Bones) {
			return [4][4]float32{}, ErrCycle
		}

		parent := *s.Bones[i].ParentIndex
		if parent >= uint64(len(s.Bones)) {
			return [4][4]float32{}, fmt.Errorf("%w: bone %q has parent %d", ErrParentIndex, s.Bones[i].Name, parent)
		}

		i = int(parent)
		world = Mul(world, s.Bones[i].Transform)
	}

	return world, nil
}

// Mul returns a * b.
func Mul(a, b [4][4]float32) [4][4]float32 {
	var out [4][4]float32

	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += float64(a[i][k]) * float64(b[k][j])
			}
			out[i][j] = float32(sum)
		}
	}

	return out
}

// Inverse inverts m with Gauss-Jordan elimination and partial pivoting.
func Inverse(m [4][4]float32) ([4][4]float32, error) {
	var a [4][8]float64

	for i := range 4 {
		for j := range 4 {
			a[i][j] = float64(m[i][j])
		}
		a[i][4+i] = 1
	}

	for col := range 4 {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		if math.Abs(a[pivot][col]) < 1e-12 {
			return [4][4]float32{}, ErrSingular
		}

		a[col], a[pivot] = a[pivot], a[col]

		scale := a[col][col]
		for j := range 8 {
			a[col][j] /= scale
		}

		for row := range 4 {
			if row == col || a[row][col] == 0 {
				continue
			}

			f := a[row][col]
			for j := range 8 {
				a[row][j] -= f * a[col][j]
			}
		}
	}

	var out [4][4]float32
	for i := range 4 {
		for j := range 4 {
			out[i][j] = float32(a[i][4+j])
		}
	}

	return out, nil
}
