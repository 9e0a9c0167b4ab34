package eval

import (
	"strconv"
	"strings"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
)

// Render печатает дерево в канонической скобочной форме: листья текстом,
// унарный минус как -x, функции как fname(x), бинарные как (l)op(r),
// логарифм по основанию как (log(l, r)). Синонимы печатаются одним
// каноническим именем (tan → tg, asin → arcsin, ln → log и т.д.).
// Тотален: любой узел даёт непустую строку, обратный парс не гарантируется.
func Render(b *ast.Builder, root ast.ExprID) string {
	var sb strings.Builder
	renderExpr(&sb, b, root)
	return sb.String()
}

func renderExpr(sb *strings.Builder, b *ast.Builder, id ast.ExprID) {
	node := b.Exprs.Get(id)
	if node == nil {
		sb.WriteString("<invalid>")
		return
	}
	switch node.Kind {
	case ast.ExprNumber:
		data, ok := b.Exprs.Number(id)
		if !ok {
			sb.WriteString("<invalid>")
			return
		}
		sb.WriteString(strconv.FormatFloat(data.Value, 'g', -1, 64))

	case ast.ExprName:
		data, ok := b.Exprs.Name(id)
		if !ok {
			sb.WriteString("<invalid>")
			return
		}
		sb.WriteByte(data.Name)

	case ast.ExprEuler:
		sb.WriteString("e")

	case ast.ExprPi:
		sb.WriteString("pi")

	case ast.ExprUnary:
		data, ok := b.Exprs.Unary(id)
		if !ok {
			sb.WriteString("<invalid>")
			return
		}
		if data.Op == ast.ExprUnaryNeg {
			sb.WriteByte('-')
			renderExpr(sb, b, data.Operand)
			return
		}
		sb.WriteString(unaryRenderName(data.Op))
		sb.WriteByte('(')
		renderExpr(sb, b, data.Operand)
		sb.WriteByte(')')

	case ast.ExprBinary:
		data, ok := b.Exprs.Binary(id)
		if !ok {
			sb.WriteString("<invalid>")
			return
		}
		if data.Op == ast.ExprBinaryLog {
			sb.WriteString("(log(")
			renderExpr(sb, b, data.Left)
			sb.WriteString(", ")
			renderExpr(sb, b, data.Right)
			sb.WriteString("))")
			return
		}
		sb.WriteByte('(')
		renderExpr(sb, b, data.Left)
		sb.WriteByte(')')
		sb.WriteString(binaryRenderOp(data.Op))
		sb.WriteByte('(')
		renderExpr(sb, b, data.Right)
		sb.WriteByte(')')

	default:
		sb.WriteString("<invalid>")
	}
}

func unaryRenderName(op ast.ExprUnaryOp) string {
	switch op {
	case ast.ExprUnarySqrt:
		return "sqrt"
	case ast.ExprUnarySin:
		return "sin"
	case ast.ExprUnaryCos:
		return "cos"
	case ast.ExprUnaryTan:
		return "tg"
	case ast.ExprUnaryCot:
		return "ctg"
	case ast.ExprUnaryArcsin:
		return "arcsin"
	case ast.ExprUnaryArccos:
		return "arccos"
	case ast.ExprUnaryArctan:
		return "arctg"
	case ast.ExprUnaryArccot:
		return "arcctg"
	case ast.ExprUnarySinh:
		return "sh"
	case ast.ExprUnaryCosh:
		return "ch"
	case ast.ExprUnaryLn:
		return "log"
	default:
		return "?"
	}
}

func binaryRenderOp(op ast.ExprBinaryOp) string {
	switch op {
	case ast.ExprBinaryAdd:
		return "+"
	case ast.ExprBinarySub:
		return "-"
	case ast.ExprBinaryMul:
		return "*"
	case ast.ExprBinaryDiv:
		return "/"
	case ast.ExprBinaryPow:
		return "^"
	default:
		return "?"
	}
}
