package reader

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
	ErrTrailingTokens = errors.New("trailing tokens after claim")
)

// LexError reports input that matches no token.
type LexError struct {
	Position  int
	Remainder string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("failed to tokenize at offset %d: %q", e.Position, e.Remainder)
}

// SyntaxError reports tokens that do not fit the grammar.
type SyntaxError struct {
	Position int
	Found    Token
	Expected string
	// Err is ErrUnexpectedEOF or ErrTrailingTokens when one of them applies.
	Err error
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at offset %d: expected %s, found %s", e.Position, e.Expected, e.Found)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
