package eval

import (
	"math"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// Value вычисляет дерево выражения. Чистая рекурсия без состояния:
// одновременные вызовы над разными деревьями безопасны.
// Переменные всегда вычисляются в 0.
func Value(b *ast.Builder, root ast.ExprID, opts Options) (float64, error) {
	ev := evaluator{b: b, opts: opts}
	return ev.compute(root)
}

type evaluator struct {
	b    *ast.Builder
	opts Options
}

func (ev *evaluator) compute(id ast.ExprID) (float64, error) {
	node := ev.b.Exprs.Get(id)
	if node == nil {
		return math.NaN(), nil
	}
	switch node.Kind {
	case ast.ExprNumber:
		data, ok := ev.b.Exprs.Number(id)
		if !ok {
			return math.NaN(), nil
		}
		return data.Value, nil

	case ast.ExprName:
		return 0, nil

	case ast.ExprEuler:
		return math.E, nil

	case ast.ExprPi:
		return math.Pi, nil

	case ast.ExprUnary:
		data, ok := ev.b.Exprs.Unary(id)
		if !ok {
			return math.NaN(), nil
		}
		return ev.computeUnary(node.Span, data)

	case ast.ExprBinary:
		data, ok := ev.b.Exprs.Binary(id)
		if !ok {
			return math.NaN(), nil
		}
		return ev.computeBinary(node.Span, data)
	}
	return math.NaN(), nil
}

func (ev *evaluator) computeUnary(span source.Span, data *ast.ExprUnaryData) (float64, error) {
	x, err := ev.compute(data.Operand)
	if err != nil {
		return math.NaN(), err
	}

	switch data.Op {
	case ast.ExprUnaryNeg:
		return -x, nil

	case ast.ExprUnarySqrt:
		if ev.opts.Strict && x < 0 {
			return math.NaN(), &DomainError{
				Op: "sqrt", Arg: x, Span: span,
				Reason: "square root of a negative number",
			}
		}
		return math.Sqrt(x), nil

	case ast.ExprUnarySin:
		return math.Sin(x), nil

	case ast.ExprUnaryCos:
		return math.Cos(x), nil

	case ast.ExprUnaryTan:
		return math.Tan(x), nil

	case ast.ExprUnaryCot:
		// не 1/tan(x): форма tan(π/2 − x) сохранена как есть,
		// они расходятся в точках, где tan(x) == 0
		return math.Tan(math.Pi/2 - x), nil

	case ast.ExprUnaryArcsin:
		if ev.opts.Strict && (x < -1 || x > 1) {
			return math.NaN(), &DomainError{
				Op: "arcsin", Arg: x, Span: span,
				Reason: "argument outside [-1, 1]",
			}
		}
		return math.Asin(x), nil

	case ast.ExprUnaryArccos:
		if ev.opts.Strict && (x < -1 || x > 1) {
			return math.NaN(), &DomainError{
				Op: "arccos", Arg: x, Span: span,
				Reason: "argument outside [-1, 1]",
			}
		}
		return math.Acos(x), nil

	case ast.ExprUnaryArctan:
		return math.Atan(x), nil

	case ast.ExprUnaryArccot:
		// π/2 − arctan(x), сохранено как есть
		return math.Pi/2 - math.Atan(x), nil

	case ast.ExprUnarySinh:
		return math.Sinh(x), nil

	case ast.ExprUnaryCosh:
		return math.Cosh(x), nil

	case ast.ExprUnaryLn:
		if ev.opts.Strict && x <= 0 {
			return math.NaN(), &DomainError{
				Op: "log", Arg: x, Span: span,
				Reason: "logarithm of a non-positive number",
			}
		}
		return math.Log(x), nil
	}
	return math.NaN(), nil
}

func (ev *evaluator) computeBinary(span source.Span, data *ast.ExprBinaryData) (float64, error) {
	l, err := ev.compute(data.Left)
	if err != nil {
		return math.NaN(), err
	}
	r, err := ev.compute(data.Right)
	if err != nil {
		return math.NaN(), err
	}

	switch data.Op {
	case ast.ExprBinaryAdd:
		return l + r, nil

	case ast.ExprBinarySub:
		return l - r, nil

	case ast.ExprBinaryMul:
		return l * r, nil

	case ast.ExprBinaryDiv:
		if ev.opts.Strict && r == 0 {
			return math.NaN(), &DomainError{
				Op: "/", Arg: r, Span: span,
				Reason: "division by zero",
			}
		}
		return l / r, nil

	case ast.ExprBinaryPow:
		if ev.opts.Strict && l == 0 && r < 0 {
			return math.NaN(), &DomainError{
				Op: "^", Arg: r, Span: span,
				Reason: "zero to a negative power",
			}
		}
		return math.Pow(l, r), nil

	case ast.ExprBinaryLog:
		if ev.opts.Strict {
			if l <= 0 {
				return math.NaN(), &DomainError{
					Op: "log", Arg: l, Span: span,
					Reason: "logarithm of a non-positive number",
				}
			}
			if r <= 0 {
				return math.NaN(), &DomainError{
					Op: "log", Arg: r, Span: span,
					Reason: "log base must be positive",
				}
			}
			if r == 1 {
				return math.NaN(), &DomainError{
					Op: "log", Arg: r, Span: span,
					Reason: "log base must not be 1",
				}
			}
		}
		return math.Log(l) / math.Log(r), nil
	}
	return math.NaN(), nil
}
