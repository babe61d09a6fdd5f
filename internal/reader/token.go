package reader

import "fmt"

// TokenType defines the kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenEOF      TokenType = iota // end of input
	TokenBottom                    // false
	TokenLiteral                   // p, q1, foo_bar
	TokenNot                       // !
	TokenAnd                       // &
	TokenOr                        // |
	TokenArrow                     // ->
	TokenTurnstile                 // =>
	TokenComma                     // ,
	TokenLParen                    // (
	TokenRParen                    // )
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenBottom:
		return "false"
	case TokenLiteral:
		return "literal"
	case TokenNot:
		return "'!'"
	case TokenAnd:
		return "'&'"
	case TokenOr:
		return "'|'"
	case TokenArrow:
		return "'->'"
	case TokenTurnstile:
		return "'=>'"
	case TokenComma:
		return "','"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "unknown"
	}
}

// Token is a single lexical token and the byte offset it starts at.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

func (t Token) String() string {
	if t.Type == TokenLiteral {
		return fmt.Sprintf("literal %q", t.Value)
	}
	return t.Type.String()
}

// fixed spellings, tried in order after keywords and identifiers
var punctuation = []struct {
	text string
	typ  TokenType
}{
	{"!", TokenNot},
	{"&", TokenAnd},
	{"|", TokenOr},
	{"->", TokenArrow},
	{",", TokenComma},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"=>", TokenTurnstile},
}
