package search

import (
	"errors"
	"fmt"

	"github.com/gnolang/seqprove/internal/logic"
	"github.com/gnolang/seqprove/internal/rules"
)

// ErrUnsound is returned by Verify when a recorded step does not replay.
var ErrUnsound = errors.New("derivation step does not replay")

// IsClosed reports whether t has no open leaves.
func IsClosed(t logic.Tree) bool {
	switch node := t.(type) {
	case logic.Open:
		return false
	case logic.Complete:
		for _, sub := range node.Subproofs {
			if !IsClosed(sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// OpenLeaves collects the claims of all open leaves, left to right.
func OpenLeaves(t logic.Tree) []logic.Claim {
	var leaves []logic.Claim
	walk(t, func(n logic.Tree, _ int) {
		if o, ok := n.(logic.Open); ok {
			leaves = append(leaves, o.Sequent)
		}
	})
	return leaves
}

// Depth is the number of edges on the longest root-to-leaf path.
func Depth(t logic.Tree) int {
	node, ok := t.(logic.Complete)
	if !ok {
		return 0
	}
	deepest := 0
	for _, sub := range node.Subproofs {
		if d := 1 + Depth(sub); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Stats summarises the shape of a derivation.
type Stats struct {
	Nodes        int                `json:"nodes"`
	Depth        int                `json:"depth"`
	ClosedLeaves int                `json:"closed_leaves"`
	OpenLeaves   int                `json:"open_leaves"`
	Rules        map[logic.Rule]int `json:"rules"`
}

// Collect computes Stats for t.
func Collect(t logic.Tree) Stats {
	st := Stats{Depth: Depth(t), Rules: make(map[logic.Rule]int)}
	walk(t, func(n logic.Tree, _ int) {
		st.Nodes++
		switch node := n.(type) {
		case logic.Open:
			st.OpenLeaves++
		case logic.Complete:
			st.Rules[node.Rule]++
			if len(node.Subproofs) == 0 {
				st.ClosedLeaves++
			}
		}
	})
	return st
}

// Verify replays every Complete node: applying its rule to its claim must
// close it and yield exactly the claims of its subproofs, in order.
func Verify(t logic.Tree) error {
	return verify(t, "root")
}

func verify(t logic.Tree, path string) error {
	node, ok := t.(logic.Complete)
	if !ok {
		return nil
	}

	out := rules.Apply(node.Sequent, node.Rule)
	if !out.IsClosed() {
		return fmt.Errorf("%w at %s: %s does not apply to %s", ErrUnsound, path, node.Rule, node.Sequent)
	}
	if len(out.Subclaims) != len(node.Subproofs) {
		return fmt.Errorf("%w at %s: %s yields %d premises, tree has %d",
			ErrUnsound, path, node.Rule, len(out.Subclaims), len(node.Subproofs))
	}
	for i, sub := range node.Subproofs {
		if !out.Subclaims[i].Equal(sub.Claim()) {
			return fmt.Errorf("%w at %s.%d: want %s, got %s", ErrUnsound, path, i, out.Subclaims[i], sub.Claim())
		}
		if err := verify(sub, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// walk visits t in pre-order.
func walk(t logic.Tree, visit func(logic.Tree, int)) {
	var rec func(logic.Tree, int)
	rec = func(n logic.Tree, depth int) {
		visit(n, depth)
		if c, ok := n.(logic.Complete); ok {
			for _, sub := range c.Subproofs {
				rec(sub, depth+1)
			}
		}
	}
	rec(t, 0)
}
