package plotmark

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
// For self-intersecting shapes such as the star symbol, the rule changes
// which sub-regions are filled.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Dash describes a stroke dash pattern.
type Dash struct {
	// Lengths holds alternating dash and gap lengths.
	Lengths []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash and gap lengths.
// Returns nil if no positive length is given, which means a solid line.
func NewDash(lengths ...float64) *Dash {
	valid := false
	for _, l := range lengths {
		if l > 0 {
			valid = true
			break
		}
	}
	if !valid {
		return nil
	}
	d := &Dash{Lengths: make([]float64, len(lengths))}
	copy(d.Lengths, lengths)
	return d
}

// Clone creates a deep copy of the dash pattern.
// Returns nil when called on a nil dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	result := &Dash{
		Lengths: make([]float64, len(d.Lengths)),
		Offset:  d.Offset,
	}
	copy(result.Lengths, d.Lengths)
	return result
}

// Equal reports whether two dash patterns are identical.
func (d *Dash) Equal(other *Dash) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Offset != other.Offset || len(d.Lengths) != len(other.Lengths) {
		return false
	}
	for i, l := range d.Lengths {
		if l != other.Lengths[i] {
			return false
		}
	}
	return true
}
