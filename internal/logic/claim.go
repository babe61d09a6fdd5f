package logic

import "strings"

// Claim is a two-sided sequent: the conjunction of Lhs entails the
// disjunction of Rhs. Order inside each side carries no logical meaning
// but is kept so that output is reproducible. Duplicates are allowed.
type Claim struct {
	Lhs []Formula
	Rhs []Formula
}

// NewClaim builds a claim that owns copies of the given sides.
func NewClaim(lhs, rhs []Formula) Claim {
	return Claim{Lhs: cloneSide(lhs), Rhs: cloneSide(rhs)}
}

// Side selects one half of a claim.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// Formulas returns the formulas on side s.
func (c Claim) Formulas(s Side) []Formula {
	if s == Left {
		return c.Lhs
	}
	return c.Rhs
}

// Without returns a copy of c with the formula at index i of side s removed.
func (c Claim) Without(s Side, i int) Claim {
	out := Claim{Lhs: cloneSide(c.Lhs), Rhs: cloneSide(c.Rhs)}
	switch s {
	case Left:
		out.Lhs = append(out.Lhs[:i], out.Lhs[i+1:]...)
	case Right:
		out.Rhs = append(out.Rhs[:i], out.Rhs[i+1:]...)
	}
	return out
}

// With returns a copy of c with fs appended to side s.
func (c Claim) With(s Side, fs ...Formula) Claim {
	out := Claim{Lhs: cloneSide(c.Lhs), Rhs: cloneSide(c.Rhs)}
	switch s {
	case Left:
		out.Lhs = append(out.Lhs, fs...)
	case Right:
		out.Rhs = append(out.Rhs, fs...)
	}
	return out
}

// Index returns the position of the first formula on side s accepted by
// match, or -1.
func (c Claim) Index(s Side, match func(Formula) bool) int {
	for i, f := range c.Formulas(s) {
		if match(f) {
			return i
		}
	}
	return -1
}

// Size sums the connective count of every formula on both sides. Each
// decomposing rule strictly decreases it.
func (c Claim) Size() int {
	n := 0
	for _, f := range c.Lhs {
		n += f.Size()
	}
	for _, f := range c.Rhs {
		n += f.Size()
	}
	return n
}

// Equal checks side by side, position by position.
func (c Claim) Equal(other Claim) bool {
	return sideEqual(c.Lhs, other.Lhs) && sideEqual(c.Rhs, other.Rhs)
}

func (c Claim) String() string {
	var sb strings.Builder
	writeSide(&sb, c.Lhs)
	if len(c.Lhs) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString("=>")
	if len(c.Rhs) > 0 {
		sb.WriteByte(' ')
	}
	writeSide(&sb, c.Rhs)
	return sb.String()
}

func writeSide(sb *strings.Builder, fs []Formula) {
	for i, f := range fs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
}

func sideEqual(a, b []Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Formulas are immutable values, so a shallow copy of the slice is enough
// to keep claims from aliasing each other.
func cloneSide(fs []Formula) []Formula {
	out := make([]Formula, len(fs), len(fs)+2)
	copy(out, fs)
	return out
}
