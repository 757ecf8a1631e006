package gfxutil

import "github.com/go-gl/mathgl/mgl32"

// Plane is the plane A*x + B*y + C*z + D = 0. Points with a non-negative
// signed distance lie on the inner side.
type Plane struct {
	A, B, C, D float32
}

// Normal returns (A, B, C).
func (p Plane) Normal() mgl32.Vec3 {
	return mgl32.Vec3{p.A, p.B, p.C}
}

// Distance returns the signed distance of pt from the plane. It is a true
// Euclidean distance only for normalized planes.
func (p Plane) Distance(pt mgl32.Vec3) float32 {
	return p.A*pt[0] + p.B*pt[1] + p.C*pt[2] + p.D
}

// Normalize scales the plane so (A, B, C) has unit length. A plane with a
// zero-length normal is returned unchanged.
func (p Plane) Normalize() Plane {
	l := p.Normal().Len()
	if l == 0 {
		return p
	}
	return Plane{p.A / l, p.B / l, p.C / l, p.D / l}
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Planes holds the six frustum planes indexed by PlaneLeft..PlaneFar, all
// oriented with normals pointing into the frustum.
type Planes [6]Plane

// DepthRange is the clip-space depth range a projection maps to.
type DepthRange uint8

const (
	// DepthZeroToOne is the WebGPU, Direct3D and Vulkan range: 0 <= z <= w.
	DepthZeroToOne DepthRange = iota

	// DepthMinusOneToOne is the OpenGL range: -w <= z <= w, as produced by
	// mgl32.Perspective and mgl32.Ortho.
	DepthMinusOneToOne
)

// ExtractFrustumPlanes returns the normalized clipping planes of a combined
// view-projection matrix with clip-space depth in [0, 1].
//
// m maps column vectors: clip = m * v, as in mathgl. For the matrix rows
// r0..r3 the planes are
//
//	left   = r3 + r0    right = r3 - r0
//	bottom = r3 + r1    top   = r3 - r1
//	near   = r2         far   = r3 - r2
//
// Passing a view-projection matrix yields world-space planes; a projection
// alone yields view-space planes.
func ExtractFrustumPlanes(m mgl32.Mat4) Planes {
	return ExtractFrustumPlanesDepth(m, DepthZeroToOne)
}

// ExtractFrustumPlanesDepth is ExtractFrustumPlanes for a given clip-space
// depth range. With DepthMinusOneToOne the near plane is r3 + r2.
func ExtractFrustumPlanesDepth(m mgl32.Mat4, depth DepthRange) Planes {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	near := r2
	if depth == DepthMinusOneToOne {
		near = r3.Add(r2)
	}

	raw := [6]mgl32.Vec4{
		PlaneLeft:   r3.Add(r0),
		PlaneRight:  r3.Sub(r0),
		PlaneBottom: r3.Add(r1),
		PlaneTop:    r3.Sub(r1),
		PlaneNear:   near,
		PlaneFar:    r3.Sub(r2),
	}

	var out Planes
	for i, v := range raw {
		out[i] = Plane{v[0], v[1], v[2], v[3]}.Normalize()
	}
	return out
}

// Frustum tests bounding volumes against a set of frustum planes.
type Frustum struct {
	Planes Planes
}

// NewFrustum extracts a frustum from a view-projection matrix with depth
// in [0, 1].
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	return Frustum{Planes: ExtractFrustumPlanes(viewProj)}
}

// ContainsPoint reports whether pt is inside or on the frustum.
func (f *Frustum) ContainsPoint(pt mgl32.Vec3) bool {
	for _, p := range f.Planes {
		if p.Distance(pt) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.Distance(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether the box [lo, hi] is at least partly inside.
// The test is conservative: boxes near a frustum corner may report true
// while lying outside.
func (f *Frustum) IntersectsAABB(lo, hi mgl32.Vec3) bool {
	for _, p := range f.Planes {
		// positive vertex
		v := hi
		if p.A < 0 {
			v[0] = lo[0]
		}
		if p.B < 0 {
			v[1] = lo[1]
		}
		if p.C < 0 {
			v[2] = lo[2]
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}
