package ast

import (
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprNumber represents a numeric literal expression.
	ExprNumber ExprKind = iota
	// ExprName represents a single-letter variable expression.
	ExprName
	// ExprEuler represents the constant e.
	ExprEuler
	// ExprPi represents the constant pi.
	ExprPi
	// ExprUnary represents a unary expression (negation or a named function).
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "Number"
	case ExprName:
		return "Name"
	case ExprEuler:
		return "Euler"
	case ExprPi:
		return "Pi"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprUnaryOp enumerates unary operator kinds.
// Синонимы грамматики (tg/tan/ctg/..., log/ln) сведены к одному op ещё парсером.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg represents the prefix minus.
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnarySqrt represents the square root function.
	ExprUnarySqrt
	// ExprUnarySin represents the sine function.
	ExprUnarySin
	// ExprUnaryCos represents the cosine function.
	ExprUnaryCos
	// ExprUnaryTan represents the tangent function.
	ExprUnaryTan
	// ExprUnaryCot represents the cotangent, computed as tan(pi/2 - x).
	ExprUnaryCot
	// ExprUnaryArcsin represents the inverse sine function.
	ExprUnaryArcsin
	// ExprUnaryArccos represents the inverse cosine function.
	ExprUnaryArccos
	// ExprUnaryArctan represents the inverse tangent function.
	ExprUnaryArctan
	// ExprUnaryArccot represents the inverse cotangent, computed as pi/2 - arctan(x).
	ExprUnaryArccot
	// ExprUnarySinh represents the hyperbolic sine function.
	ExprUnarySinh
	// ExprUnaryCosh represents the hyperbolic cosine function.
	ExprUnaryCosh
	// ExprUnaryLn represents the natural logarithm.
	ExprUnaryLn
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNeg:
		return "Neg"
	case ExprUnarySqrt:
		return "Sqrt"
	case ExprUnarySin:
		return "Sin"
	case ExprUnaryCos:
		return "Cos"
	case ExprUnaryTan:
		return "Tan"
	case ExprUnaryCot:
		return "Cot"
	case ExprUnaryArcsin:
		return "Arcsin"
	case ExprUnaryArccos:
		return "Arccos"
	case ExprUnaryArctan:
		return "Arctan"
	case ExprUnaryArccot:
		return "Arccot"
	case ExprUnarySinh:
		return "Sinh"
	case ExprUnaryCosh:
		return "Cosh"
	case ExprUnaryLn:
		return "Ln"
	default:
		return "Unknown"
	}
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryPow represents the power operator (^).
	ExprBinaryPow
	// ExprBinaryLog represents log of Left in base Right, from log(x, b).
	ExprBinaryLog
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "Add"
	case ExprBinarySub:
		return "Sub"
	case ExprBinaryMul:
		return "Mul"
	case ExprBinaryDiv:
		return "Div"
	case ExprBinaryPow:
		return "Pow"
	case ExprBinaryLog:
		return "Log"
	default:
		return "Unknown"
	}
}

// ExprNumberData is the payload of an ExprNumber node.
type ExprNumberData struct {
	Value float64
}

// ExprNameData is the payload of an ExprName node.
// Буква сохраняется: значение всегда 0, но рендер печатает имя.
type ExprNameData struct {
	Name byte
}

// ExprUnaryData is the payload of an ExprUnary node.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData is the payload of an ExprBinary node.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}
