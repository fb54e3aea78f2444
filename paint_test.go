package plotmark

import "testing"

func TestNewDash(t *testing.T) {
	if d := NewDash(); d != nil {
		t.Error("NewDash() with no lengths should be nil (solid)")
	}
	if d := NewDash(0, 0); d != nil {
		t.Error("NewDash(0, 0) should be nil (solid)")
	}
	if d := NewDash(4, 2); d == nil || len(d.Lengths) != 2 {
		t.Errorf("NewDash(4, 2) = %+v", d)
	}
}

func TestDashCloneAndEqual(t *testing.T) {
	d := NewDash(4, 2)
	d.Offset = 1

	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Lengths[0] = 9
	if d.Lengths[0] == 9 {
		t.Error("clone shares the lengths slice")
	}

	var nilDash *Dash
	if nilDash.Clone() != nil {
		t.Error("Clone of nil dash should be nil")
	}
	if !nilDash.Equal(nil) {
		t.Error("nil dashes should be equal")
	}
	if nilDash.Equal(d) {
		t.Error("nil dash should not equal a pattern")
	}
}

func TestLineStyleCloneAndEqual(t *testing.T) {
	ls := NewLineStyle(2, Black)
	ls.Cap = LineCapRound
	ls.Dash = NewDash(3, 1)

	c := ls.Clone()
	if !ls.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Dash.Lengths[0] = 9
	if ls.Dash.Lengths[0] == 9 {
		t.Error("clone shares the dash pattern")
	}

	c2 := ls.Clone()
	c2.Width = 5
	if ls.Equal(c2) {
		t.Error("styles with different widths reported equal")
	}

	var nilStyle *LineStyle
	if nilStyle.Clone() != nil {
		t.Error("Clone of nil style should be nil")
	}
	if nilStyle.Equal(ls) {
		t.Error("nil style should not equal a style")
	}
}

func TestSolidFillEqual(t *testing.T) {
	a := NewSolidFill(Black)
	if !a.Equal(NewSolidFill(Black)) {
		t.Error("identical solid fills reported unequal")
	}
	if a.Equal(NewSolidFill(White)) {
		t.Error("different colors reported equal")
	}
	if a.Equal(NewLinearGradientFill(Pt(0, 0), Pt(1, 1))) {
		t.Error("solid fill equal to gradient")
	}
}

func TestLinearGradientFillEqual(t *testing.T) {
	mk := func() *LinearGradientFill {
		return NewLinearGradientFill(
			Pt(0, 0), Pt(1, 0),
			ColorStop{Offset: 0, Color: Black},
			ColorStop{Offset: 1, Color: White},
		)
	}
	a := mk()
	if !a.Equal(mk()) {
		t.Error("identical gradients reported unequal")
	}

	b := mk()
	b.Stops[1].Offset = 0.5
	if a.Equal(b) {
		t.Error("gradients with different stops reported equal")
	}

	c := a.Clone().(*LinearGradientFill)
	c.Stops[0].Color = White
	if a.Stops[0].Color == White {
		t.Error("Clone shares the stops slice")
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradientFill(
		Pt(0, 0), Pt(1, 0),
		ColorStop{Offset: 0, Color: RGBA{R: 1, A: 1}},
		ColorStop{Offset: 1, Color: RGBA{B: 1, A: 1}},
	)

	tests := []struct {
		t    float64
		want RGBA
	}{
		{-1, RGBA{R: 1, A: 1}}, // clamped below
		{0, RGBA{R: 1, A: 1}},
		{0.5, RGBA{R: 0.5, B: 0.5, A: 1}},
		{1, RGBA{B: 1, A: 1}},
		{2, RGBA{B: 1, A: 1}}, // clamped above
	}
	for _, tt := range tests {
		got := g.colorAt(tt.t)
		if !approxEq(got.R, tt.want.R) || !approxEq(got.B, tt.want.B) || !approxEq(got.A, tt.want.A) {
			t.Errorf("colorAt(%g) = %+v, want %+v", tt.t, got, tt.want)
		}
	}

	empty := &LinearGradientFill{}
	if got := empty.colorAt(0.5); got != Transparent {
		t.Errorf("colorAt on empty gradient = %+v, want transparent", got)
	}
}

func TestFillsEqualNil(t *testing.T) {
	if !fillsEqual(nil, nil) {
		t.Error("two nil fills should be equal")
	}
	if fillsEqual(nil, NewSolidFill(Black)) {
		t.Error("nil and non-nil fills should differ")
	}
}

func TestShadowCloneAndEqual(t *testing.T) {
	s := NewShadow(2, 3, 4)
	if s.Color != (RGBA{A: 0.5}) {
		t.Errorf("default shadow color = %+v, want half-opacity black", s.Color)
	}

	c := s.Clone()
	if !s.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.BlurRadius = 9
	if s.Equal(c) {
		t.Error("shadows with different blur reported equal")
	}

	var nilShadow *Shadow
	if nilShadow.Clone() != nil {
		t.Error("Clone of nil shadow should be nil")
	}
	if !nilShadow.Equal(nil) {
		t.Error("nil shadows should be equal")
	}
}

func TestShadowMargin(t *testing.T) {
	s := &Shadow{Offset: Pt(-3, 2), BlurRadius: 4}
	x, y := s.margin()
	if x != 7 || y != 6 {
		t.Errorf("margin() = (%g, %g), want (7, 6)", x, y)
	}

	var nilShadow *Shadow
	if x, y := nilShadow.margin(); x != 0 || y != 0 {
		t.Errorf("nil shadow margin() = (%g, %g), want zero", x, y)
	}
}
