package search

import (
	"errors"
	"fmt"

	"github.com/gnolang/seqprove/internal/logic"
)

// DefaultOrder tries the closing rules first, then the rules with a single
// premise, then the branching ones.
var DefaultOrder = []logic.Rule{
	logic.LBot,
	logic.Axiom,
	logic.LNeg,
	logic.RNeg,
	logic.LAnd,
	logic.ROr,
	logic.RImpl,
	logic.RAnd,
	logic.LOr,
	logic.LImpl,
}

var (
	ErrInvalidOrder = errors.New("invalid rule order")
	ErrUnknownRule  = errors.New("unknown rule")
)

// ValidateOrder checks that order names every rule exactly once and starts
// with the two closing rules (LBot and Axiom, either way round).
func ValidateOrder(order []logic.Rule) error {
	if len(order) != len(logic.AllRules) {
		return fmt.Errorf("%w: want %d rules, got %d", ErrInvalidOrder, len(logic.AllRules), len(order))
	}

	seen := make(map[logic.Rule]bool, len(order))
	for _, r := range order {
		if r.String() == "?" {
			return fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
		}
		if seen[r] {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidOrder, r)
		}
		seen[r] = true
	}

	if !isClosing(order[0]) || !isClosing(order[1]) {
		return fmt.Errorf("%w: LBot and Axiom must come first, got %s, %s", ErrInvalidOrder, order[0], order[1])
	}
	return nil
}

// ParseOrder converts rule names to an order and validates it.
func ParseOrder(names []string) ([]logic.Rule, error) {
	order := make([]logic.Rule, 0, len(names))
	for _, name := range names {
		r, err := logic.ParseRule(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		order = append(order, r)
	}
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderNames returns the rule names of order.
func OrderNames(order []logic.Rule) []string {
	names := make([]string, len(order))
	for i, r := range order {
		names[i] = r.String()
	}
	return names
}

func isClosing(r logic.Rule) bool {
	return r == logic.LBot || r == logic.Axiom
}
