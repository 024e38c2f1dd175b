package mesh

import (
	"errors"
	"fmt"
	"math"
)

// Vectors are rows of at least three components. Transforms are row-major
// and applied to row vectors: [x y z 1] * M for points, [x y z 0] * M for
// vectors. Components past the third are copied unchanged.

var (
	ErrComponents = errors.New("expected at least 3 components")
	ErrIndexCount = errors.New("vertex index count is not a multiple of 3")
	ErrIndexRange = errors.New("vertex index out of range")
	ErrLength     = errors.New("attribute lengths differ")
)

// TransformPoints applies transform to points including translation.
func TransformPoints(points [][]float32, transform [4][4]float32) ([][]float32, error) {
	return transformRows(points, transform, 1)
}

// TransformVectors applies transform to vectors ignoring translation.
func TransformVectors(vectors [][]float32, transform [4][4]float32) ([][]float32, error) {
	return transformRows(vectors, transform, 0)
}

func transformRows(rows [][]float32, m [4][4]float32, w float32) ([][]float32, error) {
	out := make([][]float32, len(rows))

	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: %w, got %d", i, ErrComponents, len(row))
		}

		dst := append([]float32{}, row...)
		for j := range 3 {
			dst[j] = row[0]*m[0][j] + row[1]*m[1][j] + row[2]*m[2][j] + w*m[3][j]
		}

		out[i] = dst
	}

	return out, nil
}

type vec3 [3]float64

func at(rows [][]float32, i int) vec3 {
	return vec3{float64(rows[i][0]), float64(rows[i][1]), float64(rows[i][2])}
}

func (a vec3) sub(b vec3) vec3     { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec3) add(b vec3) vec3     { return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec3) scale(f float64) vec3 { return vec3{a[0] * f, a[1] * f, a[2] * f} }
func (a vec3) dot(b vec3) float64  { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3) cross(b vec3) vec3 {
	return vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func (a vec3) normalize() vec3 {
	n := math.Sqrt(a.dot(a))
	if n == 0 {
		return a
	}

	return a.scale(1 / n)
}

func checkTriangles(indices []uint32, vertexCount int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrIndexCount, len(indices))
	}

	for _, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: %d >= %d", ErrIndexRange, idx, vertexCount)
		}
	}

	return nil
}

func checkComponents(rows [][]float32, n int) error {
	for i, row := range rows {
		if len(row) < n {
			return fmt.Errorf("row %d: expected at least %d components, got %d", i, n, len(row))
		}
	}

	return nil
}

// CalculateSmoothNormals averages the area weighted face normals of the
// triangles sharing each vertex.
func CalculateSmoothNormals(positions [][]float32, vertexIndices []uint32) ([][3]float32, error) {
	if err := checkComponents(positions, 3); err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	if err := checkTriangles(vertexIndices, len(positions)); err != nil {
		return nil, err
	}

	sums := make([]vec3, len(positions))

	for t := 0; t < len(vertexIndices); t += 3 {
		i0, i1, i2 := int(vertexIndices[t]), int(vertexIndices[t+1]), int(vertexIndices[t+2])
		p0 := at(positions, i0)

		face := at(positions, i1).sub(p0).cross(at(positions, i2).sub(p0))
		for _, i := range []int{i0, i1, i2} {
			sums[i] = sums[i].add(face)
		}
	}

	out := make([][3]float32, len(positions))
	for i, s := range sums {
		n := s.normalize()
		out[i] = [3]float32{float32(n[0]), float32(n[1]), float32(n[2])}
	}

	return out, nil
}

// CalculateTangentsVec4 computes per vertex tangents from texture coordinates.
// The fourth component is the bitangent sign.
func CalculateTangentsVec4(positions, normals, uvs [][]float32, vertexIndices []uint32) ([][4]float32, error) {
	if len(normals) != len(positions) || len(uvs) != len(positions) {
		return nil, fmt.Errorf("%w: %d positions, %d normals, %d uvs", ErrLength, len(positions), len(normals), len(uvs))
	}

	if err := checkComponents(positions, 3); err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	if err := checkComponents(normals, 3); err != nil {
		return nil, fmt.Errorf("normals: %w", err)
	}

	if err := checkComponents(uvs, 2); err != nil {
		return nil, fmt.Errorf("uvs: %w", err)
	}

	if err := checkTriangles(vertexIndices, len(positions)); err != nil {
		return nil, err
	}

	tangents := make([]vec3, len(positions))
	bitangents := make([]vec3, len(positions))

	for t := 0; t < len(vertexIndices); t += 3 {
		i0, i1, i2 := int(vertexIndices[t]), int(vertexIndices[t+1]), int(vertexIndices[t+2])

		e1 := at(positions, i1).sub(at(positions, i0))
		e2 := at(positions, i2).sub(at(positions, i0))

		du1 := float64(uvs[i1][0] - uvs[i0][0])
		dv1 := float64(uvs[i1][1] - uvs[i0][1])
		du2 := float64(uvs[i2][0] - uvs[i0][0])
		dv2 := float64(uvs[i2][1] - uvs[i0][1])

		det := du1*dv2 - du2*dv1
		if det == 0 {
			continue
		}

		r := 1 / det
		tangent := e1.scale(dv2 * r).sub(e2.scale(dv1 * r))
		bitangent := e2.scale(du1 * r).sub(e1.scale(du2 * r))

		for _, i := range []int{i0, i1, i2} {
			tangents[i] = tangents[i].add(tangent)
			bitangents[i] = bitangents[i].add(bitangent)
		}
	}

	out := make([][4]float32, len(positions))

	for i := range positions {
		n := at(normals, i).normalize()
		t := tangents[i].sub(n.scale(n.dot(tangents[i]))).normalize()

		w := 1.0
		if n.cross(t).dot(bitangents[i]) < 0 {
			w = -1
		}

		out[i] = [4]float32{float32(t[0]), float32(t[1]), float32(t[2]), float32(w)}
	}

	return out, nil
}
