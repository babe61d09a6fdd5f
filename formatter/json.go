package formatter

import (
	"encoding/json"

	"github.com/gnolang/seqprove/internal/logic"
)

const (
	StatusClosed = "closed"
	StatusOpen   = "open"
)

// Node is the JSON shape of a derivation node.
type Node struct {
	Claim     string `json:"claim"`
	Rule      string `json:"rule,omitempty"`
	Status    string `json:"status"`
	Subproofs []Node `json:"subproofs,omitempty"`
}

// ToNode converts a derivation into its JSON shape. Status is "closed" only
// when the whole subtree is closed.
func ToNode(t logic.Tree) Node {
	switch node := t.(type) {
	case logic.Complete:
		n := Node{Claim: node.Sequent.String(), Rule: node.Rule.String(), Status: StatusClosed}
		for _, sub := range node.Subproofs {
			child := ToNode(sub)
			if child.Status != StatusClosed {
				n.Status = StatusOpen
			}
			n.Subproofs = append(n.Subproofs, child)
		}
		return n
	case logic.Open:
		return Node{Claim: node.Sequent.String(), Status: StatusOpen}
	default:
		return Node{Status: StatusOpen}
	}
}

// JSON renders a derivation as indented JSON.
func JSON(t logic.Tree) ([]byte, error) {
	return json.MarshalIndent(ToNode(t), "", "  ")
}
