package calc

import (
	"fmt"
	"math"
)

// Interpreter exposes methods for evaluating the given syntax tree. This struct
// implements ExprVisitor
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Evaluate reduces the tree to a single integer. Arithmetic is checked, a
// result that does not fit in an int64 is an error instead of wrapping around.
func (in *Interpreter) Evaluate(expr Expr) (int64, error) {
	val, err := in.eval(expr)
	if err != nil {
		return 0, err
	}
	return val.(int64), nil
}

func (in *Interpreter) VisitNumExpr(expr *NumExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}
	if !expr.Op.Typ.isOperator() {
		panic(fmt.Sprintf("Unreachable: unknown operator %s", expr.Op.Typ))
	}
	leftNum := lhs.(int64)
	rightNum := rhs.(int64)

	switch expr.Op.Typ {
	case PLUS:
		result, ok := addInt64(leftNum, rightNum)
		if !ok {
			return nil, newRuntimeError(expr.Op, ErrIntegerOverflow)
		}
		return result, nil

	case MINUS:
		result, ok := subInt64(leftNum, rightNum)
		if !ok {
			return nil, newRuntimeError(expr.Op, ErrIntegerOverflow)
		}
		return result, nil

	case STAR:
		result, ok := mulInt64(leftNum, rightNum)
		if !ok {
			return nil, newRuntimeError(expr.Op, ErrIntegerOverflow)
		}
		return result, nil

	case SLASH:
		if rightNum == 0 {
			return nil, newRuntimeError(expr.Op, ErrDivideByZero)
		}
		// the only quotient that can not be represented
		if leftNum == math.MinInt64 && rightNum == -1 {
			return nil, newRuntimeError(expr.Op, ErrIntegerOverflow)
		}
		return leftNum / rightNum, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}
