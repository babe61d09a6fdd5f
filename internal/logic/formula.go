package logic

// Formula represents a propositional formula.
type Formula interface {
	isFormula()
	String() string
	// Equal reports structural equality with other.
	Equal(other Formula) bool
	// Precedence ranks how weakly the formula binds. Only printers use it.
	Precedence() int
	// Size is the number of connectives in the formula.
	Size() int
}

// Binding strength of each connective; a larger value binds more weakly.
const (
	PrecAtom = iota
	PrecAnd
	PrecOr
	PrecImplication
)

var (
	_ Formula = Bottom{}
	_ Formula = Literal{}
	_ Formula = Not{}
	_ Formula = And{}
	_ Formula = Or{}
	_ Formula = Implication{}
)

// Bottom is the falsity constant.
type Bottom struct{}

func (Bottom) isFormula() {}
func (Bottom) String() string { return "false" }
func (Bottom) Precedence() int { return PrecAtom }
func (Bottom) Size() int { return 0 }

func (Bottom) Equal(other Formula) bool {
	_, ok := other.(Bottom)
	return ok
}

// Literal is an atomic proposition identified by its name.
type Literal struct {
	Name string
}

func (Literal) isFormula() {}
func (f Literal) String() string { return f.Name }
func (Literal) Precedence() int { return PrecAtom }
func (Literal) Size() int { return 0 }

func (f Literal) Equal(other Formula) bool {
	if o, ok := other.(Literal); ok {
		return f.Name == o.Name
	}
	return false
}

// Not is the negation of its operand.
type Not struct {
	Operand Formula
}

func (Not) isFormula() {}
func (Not) Precedence() int { return PrecAtom }
func (f Not) Size() int { return 1 + f.Operand.Size() }

func (f Not) String() string {
	return "!" + wrap(f.Operand, f.Operand.Precedence() > PrecAtom)
}

func (f Not) Equal(other Formula) bool {
	if o, ok := other.(Not); ok {
		return f.Operand.Equal(o.Operand)
	}
	return false
}

// And is a conjunction.
type And struct {
	Lhs Formula
	Rhs Formula
}

func (And) isFormula() {}
func (And) Precedence() int { return PrecAnd }
func (f And) Size() int { return 1 + f.Lhs.Size() + f.Rhs.Size() }

// The grammar makes '&' right-associative, so a conjunction on the left
// needs parentheses to round-trip.
func (f And) String() string {
	return wrap(f.Lhs, f.Lhs.Precedence() >= PrecAnd) + " & " + wrap(f.Rhs, f.Rhs.Precedence() > PrecAnd)
}

func (f And) Equal(other Formula) bool {
	if o, ok := other.(And); ok {
		return f.Lhs.Equal(o.Lhs) && f.Rhs.Equal(o.Rhs)
	}
	return false
}

// Or is a disjunction.
type Or struct {
	Lhs Formula
	Rhs Formula
}

func (Or) isFormula() {}
func (Or) Precedence() int { return PrecOr }
func (f Or) Size() int { return 1 + f.Lhs.Size() + f.Rhs.Size() }

func (f Or) String() string {
	return wrap(f.Lhs, f.Lhs.Precedence() >= PrecOr) + " | " + wrap(f.Rhs, f.Rhs.Precedence() > PrecOr)
}

func (f Or) Equal(other Formula) bool {
	if o, ok := other.(Or); ok {
		return f.Lhs.Equal(o.Lhs) && f.Rhs.Equal(o.Rhs)
	}
	return false
}

// Implication is material implication, Lhs -> Rhs.
type Implication struct {
	Lhs Formula
	Rhs Formula
}

func (Implication) isFormula() {}
func (Implication) Precedence() int { return PrecImplication }
func (f Implication) Size() int { return 1 + f.Lhs.Size() + f.Rhs.Size() }

func (f Implication) String() string {
	return wrap(f.Lhs, f.Lhs.Precedence() >= PrecImplication) + " -> " + f.Rhs.String()
}

func (f Implication) Equal(other Formula) bool {
	if o, ok := other.(Implication); ok {
		return f.Lhs.Equal(o.Lhs) && f.Rhs.Equal(o.Rhs)
	}
	return false
}

func wrap(f Formula, paren bool) string {
	if paren {
		return "(" + f.String() + ")"
	}
	return f.String()
}

// Equal compares two formulas structurally. Two nil formulas are equal.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Helper functions to construct formulas

// Bot returns the falsity constant.
func Bot() Formula {
	return Bottom{}
}

// Lit creates an atomic proposition.
func Lit(name string) Formula {
	return Literal{Name: name}
}

// Neg creates a negation.
func Neg(f Formula) Formula {
	return Not{Operand: f}
}

// Conj creates a conjunction.
func Conj(lhs, rhs Formula) Formula {
	return And{Lhs: lhs, Rhs: rhs}
}

// Disj creates a disjunction.
func Disj(lhs, rhs Formula) Formula {
	return Or{Lhs: lhs, Rhs: rhs}
}

// Impl creates an implication.
func Impl(lhs, rhs Formula) Formula {
	return Implication{Lhs: lhs, Rhs: rhs}
}
