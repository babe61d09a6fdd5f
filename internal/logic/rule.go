package logic

import (
	"fmt"
	"strings"
)

// Rule names an inference rule of the calculus.
type Rule int

const (
	_ Rule = iota
	Axiom
	LBot
	LNeg
	RNeg
	LAnd
	RAnd
	LOr
	ROr
	LImpl
	RImpl
)

// AllRules lists every rule in declaration order.
var AllRules = []Rule{Axiom, LBot, LNeg, RNeg, LAnd, RAnd, LOr, ROr, LImpl, RImpl}

func (r Rule) String() string {
	switch r {
	case Axiom:
		return "Axiom"
	case LBot:
		return "LBot"
	case LNeg:
		return "LNeg"
	case RNeg:
		return "RNeg"
	case LAnd:
		return "LAnd"
	case RAnd:
		return "RAnd"
	case LOr:
		return "LOr"
	case ROr:
		return "ROr"
	case LImpl:
		return "LImpl"
	case RImpl:
		return "RImpl"
	default:
		return "?"
	}
}

// ParseRule maps a rule name to its Rule, ignoring case.
func ParseRule(name string) (Rule, error) {
	for _, r := range AllRules {
		if strings.EqualFold(r.String(), strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rule %q", name)
}

func (r Rule) MarshalText() ([]byte, error) {
	if r.String() == "?" {
		return nil, fmt.Errorf("invalid rule %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
