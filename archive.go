package plotmark

import (
	"encoding/json"
	"fmt"
)

// archiveVersion is the format version written by MarshalJSON. Decoding
// rejects versions newer than this.
const archiveVersion = 1

// Serialized forms. Only the descriptor is archived; the outline and
// raster caches are derived state and are rebuilt after decoding.

type symbolJSON struct {
	Version    int            `json:"version"`
	Type       string         `json:"type"`
	Size       sizeJSON       `json:"size"`
	Anchor     pointJSON      `json:"anchor"`
	LineStyle  *lineStyleJSON `json:"lineStyle,omitempty"`
	Fill       *fillJSON      `json:"fill,omitempty"`
	Shadow     *shadowJSON    `json:"shadow,omitempty"`
	CustomPath *pathJSON      `json:"customPath,omitempty"`
	EvenOdd    bool           `json:"evenOddClipRule,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type colorJSON struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type lineStyleJSON struct {
	Width      float64   `json:"width"`
	Cap        int       `json:"cap"`
	Join       int       `json:"join"`
	MiterLimit float64   `json:"miterLimit"`
	DashList   []float64 `json:"dash,omitempty"`
	DashOffset float64   `json:"dashOffset,omitempty"`
	Color      colorJSON `json:"color"`
}

type gradientStopJSON struct {
	Offset float64   `json:"offset"`
	Color  colorJSON `json:"color"`
}

type fillJSON struct {
	Kind  string             `json:"kind"`
	Color *colorJSON         `json:"color,omitempty"`
	Start *pointJSON         `json:"start,omitempty"`
	End   *pointJSON         `json:"end,omitempty"`
	Stops []gradientStopJSON `json:"stops,omitempty"`
}

type shadowJSON struct {
	Offset     pointJSON `json:"offset"`
	BlurRadius float64   `json:"blurRadius"`
	Color      colorJSON `json:"color"`
}

// pathJSON is a compact path encoding: one op letter per element
// (M move, L line, Q quad, C cubic, Z close) with the element's
// coordinates appended to a flat array.
type pathJSON struct {
	Ops    string    `json:"ops"`
	Coords []float64 `json:"coords"`
}

// MarshalJSON implements json.Marshaler. Cached state is not persisted.
func (s *Symbol) MarshalJSON() ([]byte, error) {
	out := symbolJSON{
		Version: archiveVersion,
		Type:    s.symbolType.String(),
		Size:    sizeJSON{Width: s.size.Width, Height: s.size.Height},
		Anchor:  pointJSON{X: s.anchor.X, Y: s.anchor.Y},
		EvenOdd: s.evenOdd,
	}

	if ls := s.lineStyle; ls != nil {
		j := &lineStyleJSON{
			Width:      ls.Width,
			Cap:        int(ls.Cap),
			Join:       int(ls.Join),
			MiterLimit: ls.MiterLimit,
			Color:      encodeColor(ls.Color),
		}
		if ls.Dash != nil {
			j.DashList = append(j.DashList, ls.Dash.Lengths...)
			j.DashOffset = ls.Dash.Offset
		}
		out.LineStyle = j
	}

	if s.fill != nil {
		f, err := encodeFill(s.fill)
		if err != nil {
			return nil, err
		}
		out.Fill = f
	}

	if sh := s.shadow; sh != nil {
		out.Shadow = &shadowJSON{
			Offset:     pointJSON{X: sh.Offset.X, Y: sh.Offset.Y},
			BlurRadius: sh.BlurRadius,
			Color:      encodeColor(sh.Color),
		}
	}

	if s.customPath != nil && !s.customPath.IsEmpty() {
		out.CustomPath = encodePath(s.customPath)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded symbol starts
// with empty caches.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var in symbolJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Version <= 0 || in.Version > archiveVersion {
		return fmt.Errorf("plotmark: unsupported archive version %d", in.Version)
	}

	t, err := symbolTypeFromName(in.Type)
	if err != nil {
		return err
	}

	decoded := Symbol{
		symbolType: t,
		size:       Sz(in.Size.Width, in.Size.Height),
		anchor:     Pt(in.Anchor.X, in.Anchor.Y),
		evenOdd:    in.EvenOdd,
	}

	if j := in.LineStyle; j != nil {
		ls := &LineStyle{
			Width:      j.Width,
			Cap:        LineCap(j.Cap),
			Join:       LineJoin(j.Join),
			MiterLimit: j.MiterLimit,
			Color:      decodeColor(j.Color),
		}
		if d := NewDash(j.DashList...); d != nil {
			d.Offset = j.DashOffset
			ls.Dash = d
		}
		decoded.lineStyle = ls
	}

	if in.Fill != nil {
		f, err := decodeFill(in.Fill)
		if err != nil {
			return err
		}
		decoded.fill = f
	}

	if j := in.Shadow; j != nil {
		decoded.shadow = &Shadow{
			Offset:     Pt(j.Offset.X, j.Offset.Y),
			BlurRadius: j.BlurRadius,
			Color:      decodeColor(j.Color),
		}
	}

	if in.CustomPath != nil {
		p, err := decodePath(in.CustomPath)
		if err != nil {
			return err
		}
		decoded.customPath = p
	}

	*s = decoded
	return nil
}

func symbolTypeFromName(name string) (SymbolType, error) {
	for t, n := range symbolTypeNames {
		if n == name {
			return t, nil
		}
	}
	return SymbolNone, fmt.Errorf("plotmark: unknown symbol type %q", name)
}

func encodeColor(c RGBA) colorJSON {
	return colorJSON{R: c.R, G: c.G, B: c.B, A: c.A}
}

func decodeColor(c colorJSON) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func encodeFill(f Fill) (*fillJSON, error) {
	switch fill := f.(type) {
	case *SolidFill:
		c := encodeColor(fill.Color)
		return &fillJSON{Kind: "solid", Color: &c}, nil
	case *LinearGradientFill:
		j := &fillJSON{
			Kind:  "linearGradient",
			Start: &pointJSON{X: fill.Start.X, Y: fill.Start.Y},
			End:   &pointJSON{X: fill.End.X, Y: fill.End.Y},
		}
		for _, s := range fill.Stops {
			j.Stops = append(j.Stops, gradientStopJSON{Offset: s.Offset, Color: encodeColor(s.Color)})
		}
		return j, nil
	default:
		return nil, fmt.Errorf("plotmark: cannot archive fill type %T", f)
	}
}

func decodeFill(j *fillJSON) (Fill, error) {
	switch j.Kind {
	case "solid":
		if j.Color == nil {
			return nil, fmt.Errorf("plotmark: solid fill missing color")
		}
		return NewSolidFill(decodeColor(*j.Color)), nil
	case "linearGradient":
		if j.Start == nil || j.End == nil {
			return nil, fmt.Errorf("plotmark: gradient fill missing axis")
		}
		g := &LinearGradientFill{
			Start: Pt(j.Start.X, j.Start.Y),
			End:   Pt(j.End.X, j.End.Y),
		}
		for _, s := range j.Stops {
			g.Stops = append(g.Stops, ColorStop{Offset: s.Offset, Color: decodeColor(s.Color)})
		}
		return g, nil
	default:
		return nil, fmt.Errorf("plotmark: unknown fill kind %q", j.Kind)
	}
}

func encodePath(p *Path) *pathJSON {
	j := &pathJSON{}
	ops := make([]byte, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			ops = append(ops, 'M')
			j.Coords = append(j.Coords, e.Point.X, e.Point.Y)
		case LineTo:
			ops = append(ops, 'L')
			j.Coords = append(j.Coords, e.Point.X, e.Point.Y)
		case QuadTo:
			ops = append(ops, 'Q')
			j.Coords = append(j.Coords, e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			ops = append(ops, 'C')
			j.Coords = append(j.Coords,
				e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			ops = append(ops, 'Z')
		}
	}
	j.Ops = string(ops)
	return j
}

func decodePath(j *pathJSON) (*Path, error) {
	p := NewPath()
	coords := j.Coords
	take := func(n int) ([]float64, error) {
		if len(coords) < n {
			return nil, fmt.Errorf("plotmark: path archive truncated")
		}
		c := coords[:n]
		coords = coords[n:]
		return c, nil
	}
	for _, op := range j.Ops {
		switch op {
		case 'M':
			c, err := take(2)
			if err != nil {
				return nil, err
			}
			p.MoveTo(c[0], c[1])
		case 'L':
			c, err := take(2)
			if err != nil {
				return nil, err
			}
			p.LineTo(c[0], c[1])
		case 'Q':
			c, err := take(4)
			if err != nil {
				return nil, err
			}
			p.QuadraticTo(c[0], c[1], c[2], c[3])
		case 'C':
			c, err := take(6)
			if err != nil {
				return nil, err
			}
			p.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case 'Z':
			p.Close()
		default:
			return nil, fmt.Errorf("plotmark: unknown path op %q", op)
		}
	}
	if len(coords) != 0 {
		return nil, fmt.Errorf("plotmark: path archive has %d trailing coordinates", len(coords))
	}
	return p, nil
}
