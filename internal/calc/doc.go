/*
Package calc evaluates integer arithmetic expressions written in infix notation.

Grammars

	expression --> term ( ( "+" | "-" ) term )* ;
	term       --> factor ( ( "*" | "/" ) factor )* ;
	factor     --> NUMBER | "(" expression ")" ;

The Scanner turns characters into tokens that the Parser builds a syntax tree
from. The Interpreter then reduces the tree to an int64.

Spaces, tabs, carriage returns and newlines between tokens are ignored. There is
no unary minus, so "-1" is an error while "0 - 1" is not.

Errors never stop the process. Each stage returns its own error type
(ScanError, ParseError, RuntimeError) that wraps one of the Err* values.
*/
package calc

//go:generate go run ../cmd/ast_codegen .
