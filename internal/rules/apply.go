package rules

import "github.com/gnolang/seqprove/internal/logic"

// applier attempts a single rule against a claim.
type applier func(c logic.Claim) Outcome

var allAppliers = map[logic.Rule]applier{
	logic.Axiom: applyAxiom,
	logic.LBot:  applyLBot,
	logic.LNeg:  applyLNeg,
	logic.RNeg:  applyRNeg,
	logic.LAnd:  applyLAnd,
	logic.RAnd:  applyRAnd,
	logic.LOr:   applyLOr,
	logic.ROr:   applyROr,
	logic.LImpl: applyLImpl,
	logic.RImpl: applyRImpl,
}

// Apply tries rule once against c. Rules act on the leftmost matching
// formula of their side and never touch c itself; premises are fresh claims.
// An unknown rule leaves the claim open.
func Apply(c logic.Claim, rule logic.Rule) Outcome {
	apply, ok := allAppliers[rule]
	if !ok {
		return StillOpenOutcome()
	}
	return apply(c)
}

// Branching reports whether rule produces two premises.
func Branching(rule logic.Rule) bool {
	switch rule {
	case logic.RAnd, logic.LOr, logic.LImpl:
		return true
	default:
		return false
	}
}

// Premises is the number of child claims rule produces when it fires.
func Premises(rule logic.Rule) int {
	switch rule {
	case logic.Axiom, logic.LBot:
		return 0
	case logic.RAnd, logic.LOr, logic.LImpl:
		return 2
	default:
		return 1
	}
}

func applyAxiom(c logic.Claim) Outcome {
	for _, f := range c.Lhs {
		for _, g := range c.Rhs {
			if f.Equal(g) {
				return ClosedOutcome(logic.Axiom)
			}
		}
	}
	return StillOpenOutcome()
}

func applyLBot(c logic.Claim) Outcome {
	if c.Index(logic.Left, isBottom) < 0 {
		return StillOpenOutcome()
	}
	return ClosedOutcome(logic.LBot)
}

func applyLNeg(c logic.Claim) Outcome {
	i := c.Index(logic.Left, isNot)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Lhs[i].(logic.Not)
	return ClosedOutcome(logic.LNeg, c.Without(logic.Left, i).With(logic.Right, f.Operand))
}

func applyRNeg(c logic.Claim) Outcome {
	i := c.Index(logic.Right, isNot)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Rhs[i].(logic.Not)
	return ClosedOutcome(logic.RNeg, c.Without(logic.Right, i).With(logic.Left, f.Operand))
}

func applyLAnd(c logic.Claim) Outcome {
	i := c.Index(logic.Left, isAnd)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Lhs[i].(logic.And)
	return ClosedOutcome(logic.LAnd, c.Without(logic.Left, i).With(logic.Left, f.Lhs, f.Rhs))
}

func applyRAnd(c logic.Claim) Outcome {
	i := c.Index(logic.Right, isAnd)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Rhs[i].(logic.And)
	rest := c.Without(logic.Right, i)
	return ClosedOutcome(logic.RAnd, rest.With(logic.Right, f.Lhs), rest.With(logic.Right, f.Rhs))
}

func applyLOr(c logic.Claim) Outcome {
	i := c.Index(logic.Left, isOr)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Lhs[i].(logic.Or)
	rest := c.Without(logic.Left, i)
	return ClosedOutcome(logic.LOr, rest.With(logic.Left, f.Lhs), rest.With(logic.Left, f.Rhs))
}

func applyROr(c logic.Claim) Outcome {
	i := c.Index(logic.Right, isOr)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Rhs[i].(logic.Or)
	return ClosedOutcome(logic.ROr, c.Without(logic.Right, i).With(logic.Right, f.Lhs, f.Rhs))
}

// LImpl keeps the whole remaining context in both premises.
func applyLImpl(c logic.Claim) Outcome {
	i := c.Index(logic.Left, isImplication)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Lhs[i].(logic.Implication)
	rest := c.Without(logic.Left, i)
	return ClosedOutcome(logic.LImpl, rest.With(logic.Right, f.Lhs), rest.With(logic.Left, f.Rhs))
}

func applyRImpl(c logic.Claim) Outcome {
	i := c.Index(logic.Right, isImplication)
	if i < 0 {
		return StillOpenOutcome()
	}
	f := c.Rhs[i].(logic.Implication)
	return ClosedOutcome(logic.RImpl, c.Without(logic.Right, i).With(logic.Left, f.Lhs).With(logic.Right, f.Rhs))
}

func isBottom(f logic.Formula) bool {
	_, ok := f.(logic.Bottom)
	return ok
}

func isNot(f logic.Formula) bool {
	_, ok := f.(logic.Not)
	return ok
}

func isAnd(f logic.Formula) bool {
	_, ok := f.(logic.And)
	return ok
}

func isOr(f logic.Formula) bool {
	_, ok := f.(logic.Or)
	return ok
}

func isImplication(f logic.Formula) bool {
	_, ok := f.(logic.Implication)
	return ok
}
