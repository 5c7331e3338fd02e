package calc

import "fmt"

// AstPrinter renders a syntax tree in prefix notation, e.g. "2 + 3 * 4" is
// printed as "(+ 2 (* 3 4))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitNumExpr(expr *NumExpr) (interface{}, error) {
	return fmt.Sprintf("%d", expr.Val), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, _ := expr.Lhs.Accept(printer)
	rhs, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, lhs, rhs), nil
}
