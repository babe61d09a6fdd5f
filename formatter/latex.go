package formatter

import (
	"strings"

	"github.com/gnolang/seqprove/internal/logic"
)

// RuleSymbol is the annotation printed next to an inference line.
func RuleSymbol(r logic.Rule) string {
	switch r {
	case logic.Axiom:
		return `Ax`
	case logic.LBot:
		return `\bot L`
	case logic.LNeg:
		return `\neg L`
	case logic.RNeg:
		return `\neg R`
	case logic.LAnd:
		return `\wedge L`
	case logic.RAnd:
		return `\wedge R`
	case logic.LOr:
		return `\vee L`
	case logic.ROr:
		return `\vee R`
	case logic.LImpl:
		return `\rightarrow L`
	case logic.RImpl:
		return `\rightarrow R`
	default:
		return `?`
	}
}

// LaTeX renders a derivation as nested \frac expressions. An open node is
// just its claim.
func LaTeX(t logic.Tree) string {
	var sb strings.Builder
	writeTree(&sb, t)
	return sb.String()
}

// ClaimLaTeX renders a claim as "lhs \Rightarrow rhs".
func ClaimLaTeX(c logic.Claim) string {
	var sb strings.Builder
	writeClaim(&sb, c)
	return sb.String()
}

// FormulaLaTeX renders a single formula.
func FormulaLaTeX(f logic.Formula) string {
	var sb strings.Builder
	writeFormula(&sb, f)
	return sb.String()
}

func writeTree(sb *strings.Builder, t logic.Tree) {
	switch node := t.(type) {
	case logic.Open:
		writeClaim(sb, node.Sequent)
	case logic.Complete:
		sb.WriteString(`\frac{`)
		for i, sub := range node.Subproofs {
			if i > 0 {
				sb.WriteString(`\quad `)
			}
			writeTree(sb, sub)
		}
		sb.WriteString(`}{`)
		writeClaim(sb, node.Sequent)
		sb.WriteString(`}\quad `)
		sb.WriteString(RuleSymbol(node.Rule))
	}
}

func writeClaim(sb *strings.Builder, c logic.Claim) {
	writeList(sb, c.Lhs)
	sb.WriteString(` \Rightarrow `)
	writeList(sb, c.Rhs)
}

func writeList(sb *strings.Builder, fs []logic.Formula) {
	for i, f := range fs {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeFormula(sb, f)
	}
}

func writeFormula(sb *strings.Builder, f logic.Formula) {
	switch f := f.(type) {
	case logic.Bottom:
		sb.WriteString(`\bot`)
	case logic.Literal:
		sb.WriteString(f.Name)
	case logic.Not:
		sb.WriteString(`\neg `)
		writeOperand(sb, f.Operand, f.Precedence() < f.Operand.Precedence())
	case logic.And:
		writeBinary(sb, f, f.Lhs, f.Rhs, ` \wedge `)
	case logic.Or:
		writeBinary(sb, f, f.Lhs, f.Rhs, ` \vee `)
	case logic.Implication:
		// implication associates to the right
		writeOperand(sb, f.Lhs, f.Precedence() <= f.Lhs.Precedence())
		sb.WriteString(` \rightarrow `)
		writeOperand(sb, f.Rhs, f.Precedence() < f.Rhs.Precedence())
	}
}

func writeBinary(sb *strings.Builder, parent, lhs, rhs logic.Formula, op string) {
	writeOperand(sb, lhs, parent.Precedence() < lhs.Precedence())
	sb.WriteString(op)
	writeOperand(sb, rhs, parent.Precedence() < rhs.Precedence())
}

func writeOperand(sb *strings.Builder, f logic.Formula, paren bool) {
	if paren {
		sb.WriteString(`\left(`)
	}
	writeFormula(sb, f)
	if paren {
		sb.WriteString(`\right)`)
	}
}
