// Package oracle decides classical validity of claims with a SAT solver.
//
// A claim is valid iff the conjunction of its left side implies the
// disjunction of its right side under every valuation. The claim is encoded
// as a gini circuit, its negation is assumed, and UNSAT means valid.
//
// The prover does not depend on this package; it exists to label open
// results and to cross-check derivations.
package oracle

import (
	"sort"

	"github.com/go-air/gini"
	glogic "github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/gnolang/seqprove/internal/logic"
)

// Verdict is the classical status of a claim.
type Verdict int

const (
	VerdictInvalid Verdict = iota
	VerdictValid
)

func (v Verdict) String() string {
	if v == VerdictValid {
		return "valid"
	}
	return "invalid"
}

// Report carries the verdict and, for invalid claims, a falsifying valuation.
type Report struct {
	Verdict Verdict
	// Countermodel maps every atom of the claim to a truth value that makes
	// all of Lhs true and all of Rhs false. Nil for valid claims.
	Countermodel map[string]bool
}

// Atoms returns the countermodel's atom names in sorted order.
func (r Report) Atoms() []string {
	names := make([]string, 0, len(r.Countermodel))
	for name := range r.Countermodel {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether c is classically valid.
func Valid(c logic.Claim) bool {
	return Check(c).Verdict == VerdictValid
}

// Check decides c and returns a countermodel when it is invalid.
func Check(c logic.Claim) Report {
	enc := newEncoder()

	premise := enc.c.T
	for _, f := range c.Lhs {
		premise = enc.c.And(premise, enc.encode(f))
	}
	conclusion := enc.c.F
	for _, f := range c.Rhs {
		conclusion = enc.c.Or(conclusion, enc.encode(f))
	}
	claim := enc.c.Implies(premise, conclusion)

	switch claim {
	case enc.c.T:
		return Report{Verdict: VerdictValid}
	case enc.c.F:
		// Constant false only happens without atoms, e.g. "=> false".
		return Report{Verdict: VerdictInvalid, Countermodel: enc.valuation(nil)}
	}

	g := gini.New()
	enc.c.ToCnf(g)
	g.Assume(claim.Not())
	if g.Solve() != 1 {
		return Report{Verdict: VerdictValid}
	}
	return Report{Verdict: VerdictInvalid, Countermodel: enc.valuation(g)}
}

type encoder struct {
	c     *glogic.C
	atoms map[string]z.Lit
}

func newEncoder() *encoder {
	return &encoder{
		c:     glogic.NewC(),
		atoms: make(map[string]z.Lit),
	}
}

func (e *encoder) encode(f logic.Formula) z.Lit {
	switch f := f.(type) {
	case logic.Bottom:
		return e.c.F
	case logic.Literal:
		if m, ok := e.atoms[f.Name]; ok {
			return m
		}
		m := e.c.Lit()
		e.atoms[f.Name] = m
		return m
	case logic.Not:
		return e.encode(f.Operand).Not()
	case logic.And:
		return e.c.And(e.encode(f.Lhs), e.encode(f.Rhs))
	case logic.Or:
		return e.c.Or(e.encode(f.Lhs), e.encode(f.Rhs))
	case logic.Implication:
		return e.c.Implies(e.encode(f.Lhs), e.encode(f.Rhs))
	default:
		return e.c.F
	}
}

// valuation reads the model out of g. Atoms simplified out of the circuit
// never reach the solver; any value works for them, they get false.
func (e *encoder) valuation(g *gini.Gini) map[string]bool {
	model := make(map[string]bool, len(e.atoms))
	for name, m := range e.atoms {
		model[name] = g != nil && m.Var() <= g.MaxVar() && g.Value(m)
	}
	return model
}
