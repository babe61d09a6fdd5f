package logic

import "fmt"

// Tree is a derivation tree.
type Tree interface {
	isTree()
	// Claim returns the sequent at this node.
	Claim() Claim
	String() string
}

var (
	_ Tree = Open{}
	_ Tree = Complete{}
)

// Open is a leaf that no rule has closed yet.
type Open struct {
	Sequent Claim
}

func (Open) isTree() {}
func (t Open) Claim() Claim { return t.Sequent }
func (t Open) String() string { return fmt.Sprintf("Open(%s)", t.Sequent) }

// Complete records that Rule closed Sequent, leaving one subtree per premise.
// Axiom and LBot have no premises.
type Complete struct {
	Sequent   Claim
	Subproofs []Tree
	Rule      Rule
}

func (Complete) isTree() {}
func (t Complete) Claim() Claim { return t.Sequent }

func (t Complete) String() string {
	result := fmt.Sprintf("Complete[%s](%s", t.Rule, t.Sequent)
	for _, sub := range t.Subproofs {
		result += "; " + sub.String()
	}
	return result + ")"
}

// NewOpen wraps a claim in an open leaf.
func NewOpen(c Claim) Tree {
	return Open{Sequent: c}
}

// TreeEqual compares two derivations node by node.
func TreeEqual(a, b Tree) bool {
	switch ta := a.(type) {
	case Open:
		tb, ok := b.(Open)
		return ok && ta.Sequent.Equal(tb.Sequent)
	case Complete:
		tb, ok := b.(Complete)
		if !ok || ta.Rule != tb.Rule || !ta.Sequent.Equal(tb.Sequent) {
			return false
		}
		if len(ta.Subproofs) != len(tb.Subproofs) {
			return false
		}
		for i := range ta.Subproofs {
			if !TreeEqual(ta.Subproofs[i], tb.Subproofs[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
