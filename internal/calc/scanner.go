package calc

import "strconv"

// Scanner reads the input source and produces its tokens one at a time. Tokens
// are only scanned when they are asked for, and the scanner never goes back to
// characters that it has already consumed.
type Scanner struct {
	start   int
	current int
	source  []rune
	err     error
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	return scanner
}

// Scan reads the whole source and collects all the tokens that were found. The
// EOF token that marks the end of the source is not included.
func Scan(source string) ([]*Token, error) {
	scanner := NewScanner([]rune(source))
	tokens := make([]*Token, 0)
	for {
		tok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if tok.Typ == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next consumes the characters of the next token and returns it. Once the end of
// the source is reached, every call returns an EOF token. After an error, every
// call returns that same error.
func (scanner *Scanner) Next() (*Token, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			return scanner.token(LEFT_PAREN, 0), nil
		case ')':
			return scanner.token(RIGHT_PAREN, 0), nil
		case '-':
			return scanner.token(MINUS, 0), nil
		case '+':
			return scanner.token(PLUS, 0), nil
		case '*':
			return scanner.token(STAR, 0), nil
		case '/':
			return scanner.token(SLASH, 0), nil
		// Literals
		default:
			if isDigit(r) {
				return scanner.scanNumber()
			}
			scanner.err = newScanError(scanner.start, string(r), ErrUnexpectedChar)
			return nil, scanner.err
		}
	}

	scanner.start = scanner.current
	return scanner.token(EOF, 0), nil
}

func (scanner *Scanner) scanNumber() (*Token, error) {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: the lexeme only contains ASCII digits, so the only possible failure
	// is a value that does not fit in 64 bits.
	literal, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		scanner.err = newScanError(scanner.start, lexeme, ErrNumberOverflow)
		return nil, scanner.err
	}
	return scanner.token(NUMBER, literal), nil
}

// token creates a token of the given type from the lexeme between `start` and
// `current`
func (scanner *Scanner) token(typ TokenType, literal int64) *Token {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	return NewToken(typ, lexeme, literal, scanner.start)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// isDigit reports whether r is an ASCII decimal digit
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
