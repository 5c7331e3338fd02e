package calc

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal int64
	Pos     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal int64, pos int) *Token {
	return &Token{typ, lexeme, literal, pos}
}

func (t *Token) String() string {
	if t.Typ == NUMBER {
		return fmt.Sprintf("%s %s %d", t.Typ, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
}

// TokenType is used to represent token's type
type TokenType uint

const (
	// Literals
	NUMBER TokenType = iota

	// Operators
	PLUS
	MINUS
	STAR
	SLASH

	// Grouping
	LEFT_PAREN
	RIGHT_PAREN

	EOF
)

func (tt TokenType) String() string {
	switch tt {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}

// isOperator reports whether tt can be the operator of a binary expression.
func (tt TokenType) isOperator() bool {
	switch tt {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}
