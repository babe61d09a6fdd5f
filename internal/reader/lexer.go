package reader

import (
	"strings"
	"unicode"
)

const bottomKeyword = "false"

// Lexer scans claim text into tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Lex tokenizes input in one call.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize processes the whole input. The returned slice always ends with a
// TokenEOF. Whitespace separates tokens and is otherwise ignored.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.position >= len(l.input) {
			break
		}
		if !l.next() {
			return nil, &LexError{Position: l.position, Remainder: l.input[l.position:]}
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// next scans one token at the current position.
func (l *Lexer) next() bool {
	rest := l.input[l.position:]

	// "false" wins over identifiers even as a prefix: "falsey" is false, y.
	if strings.HasPrefix(rest, bottomKeyword) {
		l.addToken(TokenBottom, bottomKeyword, l.position)
		l.position += len(bottomKeyword)
		return true
	}

	if isIdentifierStart(rest[0]) {
		end := 1
		for end < len(rest) && isIdentifierChar(rest[end]) {
			end++
		}
		l.addToken(TokenLiteral, rest[:end], l.position)
		l.position += end
		return true
	}

	for _, p := range punctuation {
		if strings.HasPrefix(rest, p.text) {
			l.addToken(p.typ, p.text, l.position)
			l.position += len(p.text)
			return true
		}
	}
	return false
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && unicode.IsSpace(rune(l.input[l.position])) {
		l.position++
	}
}

func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9') || c == '_'
}
