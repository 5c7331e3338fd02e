package calc

// Compile scans and parses src into a syntax tree
func Compile(src string) (Expr, error) {
	scanner := NewScanner([]rune(src))
	parser := NewParser(scanner)
	return parser.Parse()
}

// Eval computes the value of the expression in src
func Eval(src string) (int64, error) {
	expr, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return NewInterpreter().Evaluate(expr)
}
