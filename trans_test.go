package xform

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestRotatePropagate(t *testing.T) {
	tr := NewRotate()
	for p, v := range map[Param]float64{RotateX: 0, RotateY: 0, RotateZ: 2, RotateTheta: 90} {
		if err := tr.SetValue(p, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	assertNearVec(t, tr.VecToWorld(Vec(1, 0, 0)), Vec(0, 1, 0), 1e-9)
	assertNearVec(t, tr.VecToObject(Vec(0, 1, 0)), Vec(1, 0, 0), 1e-9)
	assertIdentity(t, tr.Forward.Mul(tr.Inverse))
}

func TestRotateDegenerateAxis(t *testing.T) {
	var warnings []string
	old := Warnf
	Warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { Warnf = old })

	tr := NewRotate()
	tr.SetValue(RotateZ, 0)
	if err := tr.Propagate(); err != nil {
		t.Fatalf("degenerate axis is fatal: %s", err)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
	assertIdentity(t, tr.Forward)
}

func TestRotateDefaultAxis(t *testing.T) {
	var warnings []string
	old := Warnf
	Warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { Warnf = old })

	tr := NewRotate()
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	assertIdentity(t, tr.Forward)

	// Only the angle is set; the rotation is about Z.
	tr.SetValue(RotateTheta, 90)
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	assertNearVec(t, tr.VecToWorld(Vec(1, 0, 0)), Vec(0, 1, 0), 1e-9)
	assertNearVec(t, tr.VecToWorld(Vec(0, 0, 1)), Vec(0, 0, 1), 1e-9)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %q", warnings)
	}
}

func TestNewTransInvalidKind(t *testing.T) {
	for _, k := range []Kind{0, KindXform + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewTrans(%v) didn't panic", k)
				}
			}()
			NewTrans(k)
		}()
	}
}

func TestScalePropagate(t *testing.T) {
	tr := NewScale()
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	assertIdentity(t, tr.Forward)

	tr.SetValue(ScaleX, 2)
	tr.SetValue(ScaleY, -4)
	tr.SetValue(ScaleZ, 0.5)
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	diff(t, ScaleMatrix(2, -4, 0.5), tr.Forward)
	diff(t, ScaleMatrix(0.5, -0.25, 2), tr.Inverse)
}

func TestScaleDegenerate(t *testing.T) {
	tr := NewScale()
	tr.SetValue(ScaleX, 0)
	err := tr.Propagate()
	if !errors.Is(err, ErrDegenerateScale) {
		t.Fatalf("got error %v, want %v", err, ErrDegenerateScale)
	}
	// The matrices are left untouched.
	assertIdentity(t, tr.Forward)
	assertIdentity(t, tr.Inverse)

	if err := (Chain{tr}).Setup(); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateScale)
	}
}

func TestTranslatePropagate(t *testing.T) {
	tr := NewTranslate()
	tr.SetValue(TranslateX, 1)
	tr.SetValue(TranslateY, 2)
	tr.SetValue(TranslateZ, 3)
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	diff(t, TranslationMatrix(Vec(1, 2, 3)), tr.Forward)
	diff(t, Identity.Linear, tr.Inverse.Linear)
	assertNear(t, tr.PointToObject(Pt(1, 2, 3)), Pt(0, 0, 0), 1e-12)
}

func TestXformSetters(t *testing.T) {
	g := NewGraph()
	tr := NewXform()
	want := Matrix{
		Linear: [3][3]float64{
			{1, 2, 0},
			{0, 1, 3},
			{4, 0, 1},
		},
		Translate: Vec(5, 6, 7),
	}
	params := []Param{
		XformX0, XformX1, XformX2,
		XformY0, XformY1, XformY2,
		XformZ0, XformZ1, XformZ2,
	}
	for i, p := range params {
		if err := tr.Set(g, p, g.Float(want.Linear[i/3][i%3], false)); err != nil {
			t.Fatal(err)
		}
	}
	tr.Set(g, XformXt, g.Float(5, false))
	tr.Set(g, XformYt, g.Float(6, false))
	tr.Set(g, XformZt, g.Float(7, false))

	if tr.Animated() {
		t.Error("transform with constant parameters is animated")
	}
	if err := tr.Propagate(); err != nil {
		t.Fatal(err)
	}
	diff(t, want, tr.Forward)
	assertIdentity(t, tr.Forward.Mul(tr.Inverse))
}

func TestXformSingular(t *testing.T) {
	tr := NewXform()
	tr.SetValue(XformY1, 0)
	if err := tr.Propagate(); !errors.Is(err, ErrSingular) {
		t.Errorf("got error %v, want %v", err, ErrSingular)
	}
}

func TestSetUnknownParam(t *testing.T) {
	g := NewGraph()
	tr := NewScale()
	if err := tr.Set(g, RotateTheta, g.Float(1, false)); !errors.Is(err, ErrParam) {
		t.Errorf("got error %v, want %v", err, ErrParam)
	}
	if err := tr.SetValue(XformXt, 1); !errors.Is(err, ErrParam) {
		t.Errorf("got error %v, want %v", err, ErrParam)
	}
}

func TestAssoc(t *testing.T) {
	g := NewGraph()
	tr := NewTranslate()
	tv := tr.Variant.(*Translate)

	if err := tr.Assoc(g, &tv.X, g.Float(3, false)); err != nil {
		t.Fatal(err)
	}
	if tv.X != 3 {
		t.Errorf("constant wasn't stored immediately: got %v, want 3", tv.X)
	}
	if tr.Animated() {
		t.Error("constant binding made transform animated")
	}

	if err := tr.Assoc(g, &tv.Y, g.Time()); err != nil {
		t.Fatal(err)
	}
	if !tr.Animated() {
		t.Error("time-varying binding didn't make transform animated")
	}
	if err := tr.Assoc(g, &tv.Z, ExprID(99)); !errors.Is(err, ErrUnknownExpr) {
		t.Errorf("got error %v, want %v", err, ErrUnknownExpr)
	}
}

func TestCompose(t *testing.T) {
	a := NewRotate()
	a.SetValue(RotateX, 1)
	a.SetValue(RotateY, 2)
	a.SetValue(RotateZ, 3)
	a.SetValue(RotateTheta, 37)
	b := NewXform()
	b.Variant.(*Xform).M = Matrix{
		Linear: [3][3]float64{
			{2, 0.5, 0},
			{0.1, 3, -1},
			{0, 0.2, 1.5},
		},
		Translate: Vec(1, -2, 3),
	}
	if err := (Chain{a, b}).Setup(); err != nil {
		t.Fatal(err)
	}

	c := Compose(a.Transform, b.Transform)

	inv, err := c.Forward.Invert()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, inv, c.Inverse, approx)

	for _, p := range []Point3{Pt(0, 0, 0), Pt(1, 2, 3), Pt(-4, 0.5, 2)} {
		assertNear(t, p.Transform(a.Forward).Transform(b.Forward), p.Transform(c.Forward), 1e-9)
		assertNear(t, c.PointToObject(c.PointToWorld(p)), p, 1e-9)
	}

	// Composing in the wrong order gives a different transform.
	if d := Compose(b.Transform, a.Transform); d.Forward.Mul(c.Inverse).IsIdentity() {
		t.Error("composition doesn't depend on order")
	}

	if tr := c.Invert(); tr.Forward != c.Inverse || tr.Inverse != c.Forward {
		t.Error("Invert didn't swap matrices")
	}
}

func TestNormalToWorld(t *testing.T) {
	s := NewScale()
	s.SetValue(ScaleX, 4)
	if err := s.Propagate(); err != nil {
		t.Fatal(err)
	}
	// The normal of the plane x = y in object space.
	n, _ := Vec(1, -1, 0).Normalize()
	nw := s.NormalToWorld(n)
	tw := s.VecToWorld(Vec(1, 1, 0))
	if d := nw.Dot(tw); math.Abs(d) > 1e-12 {
		t.Errorf("normal not perpendicular to surface: %g", d)
	}
	assertNearVec(t, s.NormalToObject(nw), n, 1e-12)
}
