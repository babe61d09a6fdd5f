package rules

import (
	"fmt"
	"strings"

	"github.com/gnolang/seqprove/internal/logic"
)

// OutcomeKind tells whether a rule application closed the claim.
type OutcomeKind int

const (
	// StillOpen means the rule found nothing to act on.
	StillOpen OutcomeKind = iota
	// Closed means the rule fired; Subclaims holds its premises.
	Closed
)

func (k OutcomeKind) String() string {
	switch k {
	case StillOpen:
		return "StillOpen"
	case Closed:
		return "Closed"
	default:
		return "?"
	}
}

// Outcome is the result of applying one rule to one claim.
//
//	Outcome = StillOpen | Closed(Subclaims, Rule)
type Outcome struct {
	Kind      OutcomeKind
	Subclaims []logic.Claim // valid for Closed, possibly empty
	Rule      logic.Rule    // valid for Closed
}

// StillOpenOutcome creates a StillOpen outcome.
func StillOpenOutcome() Outcome {
	return Outcome{Kind: StillOpen}
}

// ClosedOutcome creates a Closed outcome with the given premises.
func ClosedOutcome(rule logic.Rule, subclaims ...logic.Claim) Outcome {
	return Outcome{Kind: Closed, Rule: rule, Subclaims: subclaims}
}

// IsClosed returns true if the rule fired.
func (o Outcome) IsClosed() bool {
	return o.Kind == Closed
}

func (o Outcome) String() string {
	if o.Kind != Closed {
		return o.Kind.String()
	}
	parts := make([]string, len(o.Subclaims))
	for i, c := range o.Subclaims {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Closed[%s](%s)", o.Rule, strings.Join(parts, "; "))
}
