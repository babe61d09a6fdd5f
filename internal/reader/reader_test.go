package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/seqprove/internal/logic"
)

func TestLexer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "claim with every punctuation",
			input: "!p & (q | r) -> s, t => false",
			expected: []Token{
				{Type: TokenNot, Value: "!", Position: 0},
				{Type: TokenLiteral, Value: "p", Position: 1},
				{Type: TokenAnd, Value: "&", Position: 3},
				{Type: TokenLParen, Value: "(", Position: 5},
				{Type: TokenLiteral, Value: "q", Position: 6},
				{Type: TokenOr, Value: "|", Position: 8},
				{Type: TokenLiteral, Value: "r", Position: 10},
				{Type: TokenRParen, Value: ")", Position: 11},
				{Type: TokenArrow, Value: "->", Position: 13},
				{Type: TokenLiteral, Value: "s", Position: 16},
				{Type: TokenComma, Value: ",", Position: 17},
				{Type: TokenLiteral, Value: "t", Position: 19},
				{Type: TokenTurnstile, Value: "=>", Position: 21},
				{Type: TokenBottom, Value: "false", Position: 24},
				{Type: TokenEOF, Value: "", Position: 29},
			},
		},
		{
			name:  "identifiers with digits and underscores",
			input: "p_1=>Q2",
			expected: []Token{
				{Type: TokenLiteral, Value: "p_1", Position: 0},
				{Type: TokenTurnstile, Value: "=>", Position: 3},
				{Type: TokenLiteral, Value: "Q2", Position: 5},
				{Type: TokenEOF, Value: "", Position: 7},
			},
		},
		{
			name:  "false prefix splits an identifier",
			input: "falsey",
			expected: []Token{
				{Type: TokenBottom, Value: "false", Position: 0},
				{Type: TokenLiteral, Value: "y", Position: 5},
				{Type: TokenEOF, Value: "", Position: 6},
			},
		},
		{
			name:     "only whitespace",
			input:    " \t\n ",
			expected: []Token{{Type: TokenEOF, Value: "", Position: 4}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens, err := Lex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestLexerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		position  int
		remainder string
	}{
		{"p => q # comment", 7, "# comment"},
		{"p = q", 2, "= q"},
		{"p - q", 2, "- q"},
		{"1p => q", 0, "1p => q"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := Lex(tt.input)
			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.position, lexErr.Position)
			assert.Equal(t, tt.remainder, lexErr.Remainder)
		})
	}
}

func TestParseFormula(t *testing.T) {
	t.Parallel()
	p, q, r := logic.Lit("p"), logic.Lit("q"), logic.Lit("r")

	tests := []struct {
		input    string
		expected logic.Formula
	}{
		{"p", p},
		{"false", logic.Bot()},
		{"!!p", logic.Neg(logic.Neg(p))},
		{"!p & q", logic.Conj(logic.Neg(p), q)},
		{"!(p & q)", logic.Neg(logic.Conj(p, q))},
		{"p & q | r", logic.Disj(logic.Conj(p, q), r)},
		{"p | q & r", logic.Disj(p, logic.Conj(q, r))},
		{"p & q & r", logic.Conj(p, logic.Conj(q, r))},
		{"p | q | r", logic.Disj(p, logic.Disj(q, r))},
		{"p -> q -> r", logic.Impl(p, logic.Impl(q, r))},
		{"(p -> q) -> r", logic.Impl(logic.Impl(p, q), r)},
		{"p | q -> r", logic.Impl(logic.Disj(p, q), r)},
		{"((p))", p},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			f, err := ParseFormula(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(f), "got %s", f)
		})
	}
}

func TestFormulaStringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"p",
		"!(p -> q)",
		"(p & q) & r",
		"(p | q) & !r",
		"(p -> q) -> (q -> r) -> p -> r",
		"!false | p & q -> r",
	}
	for _, input := range inputs {
		f, err := ParseFormula(input)
		require.NoError(t, err)
		again, err := ParseFormula(f.String())
		require.NoError(t, err)
		assert.True(t, f.Equal(again), "%q printed as %q", input, f.String())
	}
}

func TestParseClaim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
		lhs, rhs int
	}{
		{"p => p", "p => p", 1, 1},
		{"=> p | !p", "=> p | !p", 0, 1},
		{"p, q =>", "p, q =>", 2, 0},
		{"=>", "=>", 0, 0},
		{"  p,q->r  =>  (r)  ", "p, q -> r => r", 2, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			c, err := ParseClaim(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.String())
			assert.Len(t, c.Lhs, tt.lhs)
			assert.Len(t, c.Rhs, tt.rhs)
		})
	}
}

func TestParseClaimErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		position int
		sentinel error
	}{
		{"missing turnstile", "p, q", 4, ErrUnexpectedEOF},
		{"unclosed paren", "(p => q", 3, nil},
		{"dangling operator", "p & => q", 4, nil},
		{"trailing comma", "p, => q", 3, nil},
		{"second turnstile", "p => q => r", 7, ErrTrailingTokens},
		{"negation without operand", "=> !", 4, ErrUnexpectedEOF},
		{"empty input", "", 0, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseClaim(tt.input)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.position, syntaxErr.Position)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			} else {
				assert.False(t, errors.Is(err, ErrUnexpectedEOF))
				assert.False(t, errors.Is(err, ErrTrailingTokens))
			}
		})
	}
}

func TestReadClaimFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := filepath.Join(dir, "excluded_middle.seq")
	require.NoError(t, os.WriteFile(path, []byte("=> p | !p\n\n"), 0o644))
	c, err := ReadClaimFile(path)
	require.NoError(t, err)
	assert.Equal(t, "=> p | !p", c.String())

	_, err = ReadClaimFile(filepath.Join(dir, "missing.seq"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
