package calc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kinds of errors that can be produced while evaluating an expression. Each one
// is wrapped by exactly one of ScanError, ParseError, or RuntimeError, so
// callers can match the family with errors.As and the kind with errors.Is.
var (
	ErrUnexpectedChar  = errors.New("Unexpected character.")
	ErrNumberOverflow  = errors.New("Number literal out of range.")
	ErrUnexpectedToken = errors.New("Expect expression.")
	ErrUnbalancedParen = errors.New("Expect ')' after expression.")
	ErrTrailingTokens  = errors.New("Expect end of expression.")
	ErrDivideByZero    = errors.New("Division by zero.")
	ErrIntegerOverflow = errors.New("Integer overflow.")
)

// ScanError is returned by the scanner when it can not produce a token from the
// characters at Pos.
type ScanError struct {
	Pos    int
	Char   rune
	Lexeme string
	Err    error
}

func newScanError(pos int, lexeme string, err error) error {
	var char rune
	for _, r := range lexeme {
		char = r
		break
	}
	return &ScanError{pos, char, lexeme, err}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[pos %d] Error at '%s': %v", err.Pos, err.Lexeme, err.Err)
}

func (err *ScanError) Unwrap() error {
	return err.Err
}

// ParseError wraps the error found by the parser with the token at which the
// error occurred.
type ParseError struct {
	Token *Token
	Err   error
}

func newParseError(token *Token, err error) error {
	return &ParseError{token, err}
}

func (err *ParseError) Error() string {
	if err.Token.Typ == EOF {
		return fmt.Sprintf("[pos %d] Error at end: %v", err.Token.Pos, err.Err)
	}
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %v",
		err.Token.Pos,
		err.Token.Lexeme,
		err.Err,
	)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// RuntimeError wraps the error returned by the interpreter with the operator
// whose evaluation failed.
type RuntimeError struct {
	Token *Token
	Err   error
}

func newRuntimeError(token *Token, err error) error {
	return &RuntimeError{token, err}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %v",
		err.Token.Pos,
		err.Token.Lexeme,
		err.Err,
	)
}

func (err *RuntimeError) Unwrap() error {
	return err.Err
}
