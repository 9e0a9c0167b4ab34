package parser

import (
	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// Таблица приоритетов. Чем больше число, тем сильнее связывание.
// Лестница нестандартная: функции связывают сильнее умножения,
// а `^` сильнее всего, поэтому sin 2*3 == sin(2)*3, но sin 2^3 == sin(2^3)
// и -x^2 == -(x^2).
const (
	precAdditive       = 10 // + -
	precMultiplicative = 20 // * /
	precUnaryMinus     = 30 // операнд унарного минуса
	precFunction       = 40 // операнд функции: sin, cos, sqrt, ...
	precPower          = 50 // ^
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный)
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash:
		return precMultiplicative, false
	case token.Caret:
		// левоассоциативно: 2^3^2 == (2^3)^2
		return precPower, false
	default:
		return -1, false // не бинарный оператор
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Caret:
		return ast.ExprBinaryPow
	default:
		// Это не должно случаться, если таблица приоритетов корректна
		return ast.ExprBinaryAdd // fallback
	}
}

// unaryFunctionOp возвращает унарную операцию для ключевого слова-функции.
// Синонимы (tg/tan, arcsin/asin, ...) сводятся к одной операции здесь.
// log и lg сюда не входят: у них свои формы, см. parseLogExpr и parseLgExpr.
func (p *Parser) unaryFunctionOp(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.KwSqrt:
		return ast.ExprUnarySqrt, true
	case token.KwSin:
		return ast.ExprUnarySin, true
	case token.KwCos:
		return ast.ExprUnaryCos, true
	case token.KwTg, token.KwTan:
		return ast.ExprUnaryTan, true
	case token.KwCtg, token.KwCtan, token.KwCot:
		return ast.ExprUnaryCot, true
	case token.KwArcsin, token.KwAsin:
		return ast.ExprUnaryArcsin, true
	case token.KwArccos, token.KwAcos:
		return ast.ExprUnaryArccos, true
	case token.KwArctg, token.KwArctan, token.KwAtg, token.KwAtan:
		return ast.ExprUnaryArctan, true
	case token.KwArcctg, token.KwActg, token.KwActan, token.KwArccot, token.KwArccotan:
		return ast.ExprUnaryArccot, true
	case token.KwSh:
		return ast.ExprUnarySinh, true
	case token.KwCh:
		return ast.ExprUnaryCosh, true
	case token.KwLn:
		return ast.ExprUnaryLn, true
	default:
		return ast.ExprUnaryNeg, false // не функция
	}
}
