package xform

import "fmt"

// Ray is a half-line starting at Origin. Dir is normally of unit length.
type Ray struct {
	Origin Point3
	Dir    Vec3
}

func (r Ray) String() string {
	return fmt.Sprintf("ray %s → %s", r.Origin, r.Dir)
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Translate(r.Dir.Mul(t))
}

// Transform transforms the ray's origin as a point and its direction as a
// vector, then renormalizes the direction.
//
// The returned length is the magnitude of the transformed direction before
// normalization. Distances measured along the original ray are divided by
// it to become distances along the new ray.
func (r Ray) Transform(m Matrix) (Ray, float64) {
	dir, l := r.Dir.Transform(m).Normalize()
	return Ray{
		Origin: r.Origin.Transform(m),
		Dir:    dir,
	}, l
}
