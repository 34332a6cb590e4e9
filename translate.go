package xform

// Translate is a translation by ⟨X, Y, Z⟩.
type Translate struct {
	X, Y, Z float64
}

func (t *Translate) Kind() Kind { return KindTranslate }

// Propagate implements Variant. It never fails.
func (t *Translate) Propagate() (Transform, error) {
	v := Vec(t.X, t.Y, t.Z)
	return Transform{
		Forward: TranslationMatrix(v),
		Inverse: TranslationMatrix(v.Negate()),
	}, nil
}

func (t *Translate) field(p Param) *float64 {
	switch p {
	case TranslateX:
		return &t.X
	case TranslateY:
		return &t.Y
	case TranslateZ:
		return &t.Z
	default:
		return nil
	}
}
