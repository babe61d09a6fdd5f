package reader

import (
	"os"
	"strings"

	"github.com/gnolang/seqprove/internal/logic"
)

// Parser builds formulas and claims from tokens by recursive descent.
//
//	atom        := literal | false | '!' atom | '(' formula ')'
//	conjunction := atom ('&' conjunction)?
//	disjunction := conjunction ('|' disjunction)?
//	formula     := disjunction ('->' formula)?
//	list        := (formula (',' formula)*)?
//	claim       := list '=>' list
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a Parser over tokens. A missing trailing TokenEOF is
// added.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		pos := 0
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Position + len(tokens[len(tokens)-1].Value)
		}
		tokens = append(append([]Token(nil), tokens...), Token{Type: TokenEOF, Position: pos})
	}
	return &Parser{tokens: tokens}
}

// ParseClaim lexes and parses a complete claim.
func ParseClaim(input string) (logic.Claim, error) {
	tokens, err := Lex(input)
	if err != nil {
		return logic.Claim{}, err
	}
	return NewParser(tokens).Claim()
}

// ParseFormula lexes and parses a single formula.
func ParseFormula(input string) (logic.Formula, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF("end of formula"); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadClaimFile reads a file holding exactly one claim. Trailing whitespace
// is ignored.
func ReadClaimFile(path string) (logic.Claim, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return logic.Claim{}, err
	}
	return ParseClaim(strings.TrimRight(string(content), " \t\r\n"))
}

// Claim parses a whole claim and rejects anything after it.
func (p *Parser) Claim() (logic.Claim, error) {
	lhs, err := p.list()
	if err != nil {
		return logic.Claim{}, err
	}
	if _, err := p.expect(TokenTurnstile, "'=>'"); err != nil {
		return logic.Claim{}, err
	}
	rhs, err := p.list()
	if err != nil {
		return logic.Claim{}, err
	}
	if err := p.expectEOF("end of claim"); err != nil {
		return logic.Claim{}, err
	}
	return logic.Claim{Lhs: lhs, Rhs: rhs}, nil
}

func (p *Parser) list() ([]logic.Formula, error) {
	formulas := make([]logic.Formula, 0)
	if !startsFormula(p.peek().Type) {
		return formulas, nil
	}
	for {
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
		if p.peek().Type != TokenComma {
			return formulas, nil
		}
		p.current++
	}
}

func (p *Parser) formula() (logic.Formula, error) {
	lhs, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenArrow {
		return lhs, nil
	}
	p.current++
	rhs, err := p.formula()
	if err != nil {
		return nil, err
	}
	return logic.Impl(lhs, rhs), nil
}

func (p *Parser) disjunction() (logic.Formula, error) {
	lhs, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenOr {
		return lhs, nil
	}
	p.current++
	rhs, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	return logic.Disj(lhs, rhs), nil
}

func (p *Parser) conjunction() (logic.Formula, error) {
	lhs, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenAnd {
		return lhs, nil
	}
	p.current++
	rhs, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	return logic.Conj(lhs, rhs), nil
}

func (p *Parser) atom() (logic.Formula, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenBottom:
		p.current++
		return logic.Bot(), nil
	case TokenLiteral:
		p.current++
		return logic.Lit(tok.Value), nil
	case TokenNot:
		p.current++
		operand, err := p.atom()
		if err != nil {
			return nil, err
		}
		return logic.Neg(operand), nil
	case TokenLParen:
		p.current++
		inner, err := p.formula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf("formula")
	}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) expect(typ TokenType, expected string) (Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return tok, p.errorf(expected)
	}
	p.current++
	return tok, nil
}

func (p *Parser) expectEOF(expected string) error {
	tok := p.peek()
	if tok.Type == TokenEOF {
		return nil
	}
	return &SyntaxError{Position: tok.Position, Found: tok, Expected: expected, Err: ErrTrailingTokens}
}

func (p *Parser) errorf(expected string) error {
	tok := p.peek()
	e := &SyntaxError{Position: tok.Position, Found: tok, Expected: expected}
	if tok.Type == TokenEOF {
		e.Err = ErrUnexpectedEOF
	}
	return e
}

func startsFormula(t TokenType) bool {
	switch t {
	case TokenBottom, TokenLiteral, TokenNot, TokenLParen:
		return true
	default:
		return false
	}
}
