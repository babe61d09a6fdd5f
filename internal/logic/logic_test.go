package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaString(t *testing.T) {
	t.Parallel()
	p, q, r := Lit("p"), Lit("q"), Lit("r")

	tests := []struct {
		name     string
		formula  Formula
		expected string
	}{
		{"bottom", Bot(), "false"},
		{"literal", p, "p"},
		{"negation", Neg(p), "!p"},
		{"negated conjunction", Neg(Conj(p, q)), "!(p & q)"},
		{"double negation", Neg(Neg(p)), "!!p"},
		{"conjunction is right associative", Conj(p, Conj(q, r)), "p & q & r"},
		{"left nested conjunction", Conj(Conj(p, q), r), "(p & q) & r"},
		{"and binds tighter than or", Disj(Conj(p, q), r), "p & q | r"},
		{"or inside and", Conj(Disj(p, q), r), "(p | q) & r"},
		{"implication is right associative", Impl(p, Impl(q, r)), "p -> q -> r"},
		{"left nested implication", Impl(Impl(p, q), r), "(p -> q) -> r"},
		{"or under implication", Impl(Disj(p, q), Conj(q, r)), "p | q -> q & r"},
		{"implication under negation", Neg(Impl(p, Bot())), "!(p -> false)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.formula.String())
		})
	}
}

func TestFormulaEqual(t *testing.T) {
	t.Parallel()
	p, q := Lit("p"), Lit("q")

	assert.True(t, Conj(p, q).Equal(Conj(Lit("p"), Lit("q"))))
	assert.False(t, Conj(p, q).Equal(Conj(q, p)))
	assert.False(t, Conj(p, q).Equal(Disj(p, q)))
	assert.True(t, Bot().Equal(Bottom{}))
	assert.False(t, Bot().Equal(Lit("false")))
	assert.True(t, Neg(Impl(p, q)).Equal(Neg(Impl(p, q))))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(p, nil))
}

func TestFormulaSize(t *testing.T) {
	t.Parallel()
	p, q := Lit("p"), Lit("q")

	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 0, Bot().Size())
	assert.Equal(t, 1, Neg(p).Size())
	assert.Equal(t, 3, Impl(Conj(p, q), Neg(q)).Size())
}

func TestClaimString(t *testing.T) {
	t.Parallel()
	p, q := Lit("p"), Lit("q")

	assert.Equal(t, "p, q => p & q", NewClaim([]Formula{p, q}, []Formula{Conj(p, q)}).String())
	assert.Equal(t, "=> p", NewClaim(nil, []Formula{p}).String())
	assert.Equal(t, "p =>", NewClaim([]Formula{p}, nil).String())
	assert.Equal(t, "=>", Claim{}.String())
}

func TestClaimWithoutDoesNotAlias(t *testing.T) {
	t.Parallel()
	p, q, r := Lit("p"), Lit("q"), Lit("r")
	c := NewClaim([]Formula{p, q, r}, []Formula{p})

	removed := c.Without(Left, 0)
	extended := c.With(Left, Neg(p))

	assert.Equal(t, "q, r => p", removed.String())
	assert.Equal(t, "p, q, r, !p => p", extended.String())
	assert.Equal(t, "p, q, r => p", c.String())

	// appending to two copies must not write into a shared backing array
	a := removed.With(Right, q)
	b := removed.With(Right, r)
	assert.Equal(t, "q, r => p, q", a.String())
	assert.Equal(t, "q, r => p, r", b.String())
}

func TestClaimIndexAndSize(t *testing.T) {
	t.Parallel()
	p, q := Lit("p"), Lit("q")
	c := NewClaim([]Formula{p, Conj(p, q), Conj(q, p)}, []Formula{Neg(p)})

	isAnd := func(f Formula) bool {
		_, ok := f.(And)
		return ok
	}
	assert.Equal(t, 1, c.Index(Left, isAnd))
	assert.Equal(t, -1, c.Index(Right, isAnd))
	assert.Equal(t, 3, c.Size())
}

func TestClaimEqual(t *testing.T) {
	t.Parallel()
	p, q := Lit("p"), Lit("q")

	assert.True(t, NewClaim([]Formula{p}, []Formula{q}).Equal(NewClaim([]Formula{p}, []Formula{q})))
	assert.False(t, NewClaim([]Formula{p, q}, nil).Equal(NewClaim([]Formula{q, p}, nil)))
	assert.True(t, Claim{}.Equal(NewClaim(nil, nil)))
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	for _, r := range AllRules {
		parsed, err := ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	r, err := ParseRule(" rimpl ")
	require.NoError(t, err)
	assert.Equal(t, RImpl, r)

	_, err = ParseRule("Cut")
	assert.Error(t, err)

	var unknown Rule
	_, err = unknown.MarshalText()
	assert.Error(t, err)
}

func TestTreeEqual(t *testing.T) {
	t.Parallel()
	p := Lit("p")
	c := NewClaim([]Formula{p}, []Formula{p})

	closed := Complete{Sequent: c, Rule: Axiom}
	assert.True(t, TreeEqual(closed, Complete{Sequent: c, Rule: Axiom}))
	assert.False(t, TreeEqual(closed, Complete{Sequent: c, Rule: LBot}))
	assert.False(t, TreeEqual(closed, NewOpen(c)))
	assert.True(t, TreeEqual(NewOpen(c), NewOpen(c)))
	assert.Equal(t, "Complete[Axiom](p => p)", closed.String())
	assert.Equal(t, "Open(p => p)", NewOpen(c).String())
}
