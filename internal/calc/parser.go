package calc

// TokenSource produces tokens one at a time, it returns an EOF token once there
// are no more tokens to be produced.
type TokenSource interface {
	Next() (*Token, error)
}

// tokenStream is a TokenSource backed by tokens that were already scanned
type tokenStream struct {
	current int
	tokens  []*Token
}

// NewTokenStream creates a TokenSource that yields the given tokens in order.
// An EOF token is produced after the last token if the slice does not end with
// one.
func NewTokenStream(tokens []*Token) TokenSource {
	return &tokenStream{0, tokens}
}

func (stream *tokenStream) Next() (*Token, error) {
	if stream.current < len(stream.tokens) {
		tok := stream.tokens[stream.current]
		if tok.Typ != EOF {
			stream.current++
		}
		return tok, nil
	}
	pos := 0
	if n := len(stream.tokens); n > 0 {
		last := stream.tokens[n-1]
		pos = last.Pos + len([]rune(last.Lexeme))
	}
	return NewToken(EOF, "", 0, pos), nil
}

// Parser composes the syntax tree from the sequence of tokens that follow the
// grammar rules below. The parser looks at most one token ahead.
//
// Grammar
//
//	expression --> term ( ( "+" | "-" ) term )* ;
//	term       --> factor ( ( "*" | "/" ) factor )* ;
//	factor     --> NUMBER | "(" expression ")" ;
type Parser struct {
	source  TokenSource
	current *Token
	prevTok *Token
}

// NewParser creates a new parser that reads its tokens from source
func NewParser(source TokenSource) *Parser {
	return &Parser{source, nil, nil}
}

// Parse reads a single complete expression. All tokens of the source must be
// consumed by the expression, otherwise a ParseError is returned.
func (parser *Parser) Parse() (Expr, error) {
	if parser.current == nil {
		if err := parser.advance(); err != nil {
			return nil, err
		}
	}
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, newParseError(parser.peek(), ErrTrailingTokens)
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `term` if does not hit "+" or "-".
//
// expression --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) expression() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for {
		matched, err := parser.match(PLUS, MINUS)
		if err != nil {
			return nil, err
		}
		if !matched {
			return expr, nil
		}
		op := parser.prev()
		rhs, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
}

// term --> factor ( ( "*" | "/" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for {
		matched, err := parser.match(STAR, SLASH)
		if err != nil {
			return nil, err
		}
		if !matched {
			return expr, nil
		}
		op := parser.prev()
		rhs, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
}

// factor --> NUMBER | "(" expression ")" ;
func (parser *Parser) factor() (Expr, error) {
	if parser.check(NUMBER) {
		tok := parser.peek()
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return NewNumExpr(tok.Literal), nil
	}
	if parser.check(LEFT_PAREN) {
		if err := parser.advance(); err != nil {
			return nil, err
		}
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(RIGHT_PAREN, ErrUnbalancedParen); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, newParseError(parser.peek(), ErrUnexpectedToken)
}

// match consumes the current token if it has one of the given types
func (parser *Parser) match(types ...TokenType) (bool, error) {
	for _, tt := range types {
		if parser.check(tt) {
			return true, parser.advance()
		}
	}
	return false, nil
}

func (parser *Parser) consume(typ TokenType, kind error) error {
	if parser.check(typ) {
		return parser.advance()
	}
	return newParseError(parser.peek(), kind)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

// advance moves the lookahead to the next token from the source. Errors from
// the source are returned as-is.
func (parser *Parser) advance() error {
	if parser.current != nil && parser.isEOF() {
		return nil
	}
	tok, err := parser.source.Next()
	if err != nil {
		return err
	}
	parser.prevTok = parser.current
	parser.current = tok
	return nil
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.current
}

func (parser *Parser) prev() *Token {
	return parser.prevTok
}
