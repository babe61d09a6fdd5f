package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/seqprove/internal/logic"
)

var (
	closedStyle = color.New(color.FgGreen, color.Bold)
	openStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle   = color.New(color.FgYellow)
	claimStyle  = color.New(color.FgWhite)
	branchStyle = color.New(color.FgHiBlue)
)

const (
	closedMark = "✓"
	openMark   = "✗"
)

// Text writes an indented view of the derivation, one claim per line.
// Colours follow color.NoColor.
//
//	✓ p & q => q & p  [LAnd]
//	└── ✓ p, q => q & p  [RAnd]
//	    ├── ✓ p, q => q  [Axiom]
//	    └── ✓ p, q => p  [Axiom]
func Text(w io.Writer, t logic.Tree) error {
	return writeText(w, t, "", "")
}

// TextString is Text into a string.
func TextString(t logic.Tree) string {
	var sb strings.Builder
	_ = Text(&sb, t)
	return sb.String()
}

func writeText(w io.Writer, t logic.Tree, prefix, childPrefix string) error {
	var line string
	switch node := t.(type) {
	case logic.Open:
		line = fmt.Sprintf("%s%s %s  %s", branchStyle.Sprint(prefix), openStyle.Sprint(openMark),
			claimStyle.Sprint(node.Sequent.String()), openStyle.Sprint("[open]"))
	case logic.Complete:
		mark := closedStyle.Sprint(closedMark)
		if !treeClosed(node) {
			mark = openStyle.Sprint(openMark)
		}
		line = fmt.Sprintf("%s%s %s  %s", branchStyle.Sprint(prefix), mark,
			claimStyle.Sprint(node.Sequent.String()), ruleStyle.Sprintf("[%s]", node.Rule))
	default:
		return nil
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	node, ok := t.(logic.Complete)
	if !ok {
		return nil
	}
	for i, sub := range node.Subproofs {
		branch, next := "├── ", "│   "
		if i == len(node.Subproofs)-1 {
			branch, next = "└── ", "    "
		}
		if err := writeText(w, sub, childPrefix+branch, childPrefix+next); err != nil {
			return err
		}
	}
	return nil
}

// treeClosed duplicates search.IsClosed so the formatter stays free of the
// engine packages.
func treeClosed(t logic.Tree) bool {
	switch node := t.(type) {
	case logic.Complete:
		for _, sub := range node.Subproofs {
			if !treeClosed(sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
