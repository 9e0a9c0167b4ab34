package token

import (
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Value   float64 // разобранное значение для Number, иначе 0
	Leading []Trivia
}

// IsConstant reports whether the token is one of the named constants (e, pi).
func (t Token) IsConstant() bool {
	return t.Kind == KwE || t.Kind == KwPi
}

// IsFunction reports whether the token is a unary function keyword.
func (t Token) IsFunction() bool {
	switch t.Kind {
	case KwSin, KwCos, KwTg, KwTan, KwCtg, KwCtan, KwCot,
		KwArcsin, KwAsin, KwArccos, KwAcos,
		KwArctg, KwArctan, KwAtg, KwAtan,
		KwArcctg, KwActg, KwActan, KwArccot, KwArccotan,
		KwSh, KwCh, KwLog, KwLg, KwLn, KwSqrt:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is any keyword (constant or function).
func (t Token) IsKeyword() bool {
	return t.IsConstant() || t.IsFunction()
}

// IsPunct reports whether the token is an operator, bracket, or comma.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Caret,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Comma:
		return true
	default:
		return false
	}
}

// IsOpenBracket reports whether the token opens a group.
// Круглые, фигурные и квадратные скобки взаимозаменяемы.
func (t Token) IsOpenBracket() bool {
	return t.Kind == LParen || t.Kind == LBrace || t.Kind == LBracket
}

// IsCloseBracket reports whether the token closes a group.
// Закрывает любую открытую: вид скобки не сверяется.
func (t Token) IsCloseBracket() bool {
	return t.Kind == RParen || t.Kind == RBrace || t.Kind == RBracket
}
