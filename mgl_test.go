package xform

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMat4(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randomMatrix(rng)
	p := Pt(1, -2, 0.5)

	got := Point3(Vec3FromMgl(m.Mat4().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1}).Vec3()))
	assertNear(t, got, p.Transform(m), 1e-9)

	back, err := MatrixFromMat4(m.Mat4())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, m, back, approx)
}

func TestMatrixFromMat4Projective(t *testing.T) {
	if _, err := MatrixFromMat4(mgl64.Perspective(1, 1, 0.1, 100)); err == nil {
		t.Error("expected error for projective matrix")
	}
}
