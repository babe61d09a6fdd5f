package formatter

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/seqprove/internal/logic"
	"github.com/gnolang/seqprove/internal/reader"
	"github.com/gnolang/seqprove/internal/search"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func derive(t *testing.T, input string) logic.Tree {
	t.Helper()
	c, err := reader.ParseClaim(input)
	require.NoError(t, err)
	return search.Search(logic.NewOpen(c))
}

func TestLaTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		claim    string
		expected string
	}{
		{
			name:     "axiom",
			claim:    "p => p",
			expected: `\frac{}{p \Rightarrow p}\quad Ax`,
		},
		{
			name:  "excluded middle",
			claim: "=> p | !p",
			expected: `\frac{\frac{\frac{}{p \Rightarrow p}\quad Ax}{ \Rightarrow p, \neg p}\quad \neg R}` +
				`{ \Rightarrow p \vee \neg p}\quad \vee R`,
		},
		{
			name:  "branching rule",
			claim: "p & q => q & p",
			expected: `\frac{\frac{\frac{}{p, q \Rightarrow q}\quad Ax\quad \frac{}{p, q \Rightarrow p}\quad Ax}` +
				`{p, q \Rightarrow q \wedge p}\quad \wedge R}{p \wedge q \Rightarrow q \wedge p}\quad \wedge L`,
		},
		{
			name:     "open claim",
			claim:    "p => q",
			expected: `p \Rightarrow q`,
		},
		{
			name:     "bottom",
			claim:    "false =>",
			expected: `\frac{}{\bot \Rightarrow }\quad \bot L`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, LaTeX(derive(t, tt.claim)))
		})
	}
}

func TestFormulaLaTeX(t *testing.T) {
	t.Parallel()
	p, q, r := logic.Lit("p"), logic.Lit("q"), logic.Lit("r")

	tests := []struct {
		formula  logic.Formula
		expected string
	}{
		{logic.Neg(logic.Conj(p, q)), `\neg \left(p \wedge q\right)`},
		{logic.Neg(logic.Neg(p)), `\neg \neg p`},
		{logic.Conj(logic.Disj(p, q), r), `\left(p \vee q\right) \wedge r`},
		{logic.Disj(logic.Conj(p, q), r), `p \wedge q \vee r`},
		{logic.Impl(logic.Impl(p, q), r), `\left(p \rightarrow q\right) \rightarrow r`},
		{logic.Impl(p, logic.Impl(q, r)), `p \rightarrow q \rightarrow r`},
		{logic.Impl(logic.Bot(), p), `\bot \rightarrow p`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormulaLaTeX(tt.formula))
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	expected := "✓ p & q => q & p  [LAnd]\n" +
		"└── ✓ p, q => q & p  [RAnd]\n" +
		"    ├── ✓ p, q => q  [Axiom]\n" +
		"    └── ✓ p, q => p  [Axiom]\n"
	assert.Equal(t, expected, TextString(derive(t, "p & q => q & p")))

	assert.Equal(t, "✗ p => q  [open]\n", TextString(derive(t, "p => q")))

	partial := TextString(derive(t, "p -> q => q"))
	assert.Contains(t, partial, "✗ p -> q => q  [LImpl]\n")
	assert.Contains(t, partial, "├── ✗ => q, p  [open]\n")
	assert.Contains(t, partial, "└── ✓ q => q  [Axiom]\n")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	d, err := JSON(derive(t, "p -> q => q"))
	require.NoError(t, err)

	var node Node
	require.NoError(t, json.Unmarshal(d, &node))
	assert.Equal(t, "p -> q => q", node.Claim)
	assert.Equal(t, "LImpl", node.Rule)
	assert.Equal(t, StatusOpen, node.Status)
	require.Len(t, node.Subproofs, 2)
	assert.Equal(t, Node{Claim: "=> q, p", Status: StatusOpen}, node.Subproofs[0])
	assert.Equal(t, Node{Claim: "q => q", Rule: "Axiom", Status: StatusClosed}, node.Subproofs[1])
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"", KindLaTeX, false},
		{"LaTeX", KindLaTeX, false},
		{"text", KindText, false},
		{" json ", KindJSON, false},
		{"html", 0, true},
	}

	for _, tt := range tests {
		kind, err := ParseKind(tt.input)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, kind)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	tree := derive(t, "p => p")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tree, KindLaTeX))
	assert.Equal(t, `\frac{}{p \Rightarrow p}\quad Ax`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, tree, KindText))
	assert.Equal(t, "✓ p => p  [Axiom]\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, tree, KindJSON))
	assert.JSONEq(t, `{"claim": "p => p", "rule": "Axiom", "status": "closed"}`, buf.String())
}

func TestRuleSymbol(t *testing.T) {
	t.Parallel()

	for _, r := range logic.AllRules {
		assert.NotEqual(t, "?", RuleSymbol(r), "rule %s", r)
	}
	assert.Equal(t, "?", RuleSymbol(logic.Rule(0)))
}
