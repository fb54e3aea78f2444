package plotmark

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSymbolJSONRoundTrip(t *testing.T) {
	custom := NewPath()
	custom.MoveTo(0, 0)
	custom.LineTo(4, 0)
	custom.QuadraticTo(4, 4, 0, 4)
	custom.CubicTo(-1, 3, -1, 1, 0, 0)
	custom.Close()

	ls := NewLineStyle(2.5, RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1})
	ls.Cap = LineCapRound
	ls.Join = LineJoinBevel
	ls.Dash = NewDash(4, 2)
	ls.Dash.Offset = 1

	s := CustomSymbol(custom)
	s.SetSize(Sz(14, 9))
	s.SetAnchorPoint(Pt(0, 1))
	s.SetLineStyle(ls)
	s.SetFill(NewLinearGradientFill(
		Pt(0, 0), Pt(1, 1),
		ColorStop{Offset: 0, Color: White},
		ColorStop{Offset: 0.5, Color: RGBA{R: 1, A: 0.5}},
		ColorStop{Offset: 1, Color: Black},
	))
	s.SetShadow(NewShadow(2, -1, 3))
	s.SetUsesEvenOddClipRule(true)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}

	var decoded Symbol
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !s.Equal(&decoded) {
		t.Errorf("round trip changed the symbol:\n%s", data)
	}
	if decoded.cachedOutline != nil || decoded.cachedRaster != nil {
		t.Error("decoded symbol should start with empty caches")
	}
}

func TestSymbolJSONMinimal(t *testing.T) {
	s := EllipseSymbol()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}

	var decoded Symbol
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !s.Equal(&decoded) {
		t.Errorf("round trip changed the symbol:\n%s", data)
	}
	if decoded.LineStyle() != nil || decoded.Fill() != nil || decoded.Shadow() != nil {
		t.Error("absent optional fields should decode as nil")
	}
}

func TestSymbolJSONFormat(t *testing.T) {
	s := StarSymbol()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}

	text := string(data)
	for _, want := range []string{`"version":1`, `"type":"star"`} {
		if !strings.Contains(text, want) {
			t.Errorf("archive %s missing %s", text, want)
		}
	}
	// Caches and derived state must never be persisted.
	for _, banned := range []string{"outline", "raster"} {
		if strings.Contains(text, banned) {
			t.Errorf("archive %s leaks derived state %q", text, banned)
		}
	}
}

func TestSymbolJSONCachesNotPersisted(t *testing.T) {
	s := StarSymbol()
	s.SetLineStyle(redStroke())
	populateCaches(t, s)

	withCaches, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	fresh, err := json.Marshal(s.Clone())
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	if string(withCaches) != string(fresh) {
		t.Error("cache state changed the archive")
	}
}

func TestSymbolJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknownType", `{"version":1,"type":"blob","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5}}`},
		{"futureVersion", `{"version":99,"type":"star","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5}}`},
		{"missingVersion", `{"type":"star","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5}}`},
		{"unknownFillKind", `{"version":1,"type":"star","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5},"fill":{"kind":"plaid"}}`},
		{"badPathOp", `{"version":1,"type":"custom","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5},"customPath":{"ops":"MX","coords":[0,0]}}`},
		{"truncatedPath", `{"version":1,"type":"custom","size":{"width":5,"height":5},"anchor":{"x":0.5,"y":0.5},"customPath":{"ops":"ML","coords":[0,0,1]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Symbol
			if err := json.Unmarshal([]byte(tt.data), &s); err == nil {
				t.Error("Unmarshal() accepted invalid archive")
			}
		})
	}
}
