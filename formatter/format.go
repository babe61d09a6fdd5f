// Package formatter renders derivation trees as LaTeX, coloured text or JSON.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnolang/seqprove/internal/logic"
)

// Kind selects an output format.
type Kind int

const (
	KindLaTeX Kind = iota
	KindText
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindLaTeX:
		return "latex"
	case KindText:
		return "text"
	case KindJSON:
		return "json"
	default:
		return "?"
	}
}

// ParseKind maps a --format value to a Kind. The empty string means LaTeX.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latex", "tex":
		return KindLaTeX, nil
	case "text", "tree":
		return KindText, nil
	case "json":
		return KindJSON, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want latex, text or json)", s)
	}
}

// Render writes t to w in the given format, ending with a newline.
func Render(w io.Writer, t logic.Tree, kind Kind) error {
	switch kind {
	case KindText:
		return Text(w, t)
	case KindJSON:
		d, err := JSON(t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(d))
		return err
	default:
		_, err := fmt.Fprintln(w, LaTeX(t))
		return err
	}
}
