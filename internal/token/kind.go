package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Number represents a numeric literal token.
	Number
	// Name represents a single-letter variable token.
	Name

	// KwE represents the 'e' constant keyword.
	KwE // e
	// KwPi represents the 'pi' constant keyword.
	KwPi // pi
	// KwSin represents the 'sin' function keyword.
	KwSin // sin
	// KwCos represents the 'cos' function keyword.
	KwCos // cos
	// KwTg represents the 'tg' function keyword.
	KwTg // tg
	// KwTan represents the 'tan' function keyword.
	KwTan // tan
	// KwCtg represents the 'ctg' function keyword.
	KwCtg // ctg
	// KwCtan represents the 'ctan' function keyword.
	KwCtan // ctan
	// KwCot represents the 'cot' function keyword.
	KwCot // cot
	// KwArcsin represents the 'arcsin' function keyword.
	KwArcsin // arcsin
	// KwAsin represents the 'asin' function keyword.
	KwAsin // asin
	// KwArccos represents the 'arccos' function keyword.
	KwArccos // arccos
	// KwAcos represents the 'acos' function keyword.
	KwAcos // acos
	// KwArctg represents the 'arctg' function keyword.
	KwArctg // arctg
	// KwArctan represents the 'arctan' function keyword.
	KwArctan // arctan
	// KwAtg represents the 'atg' function keyword.
	KwAtg // atg
	// KwAtan represents the 'atan' function keyword.
	KwAtan // atan
	// KwArcctg represents the 'arcctg' function keyword.
	KwArcctg // arcctg
	// KwActg represents the 'actg' function keyword.
	KwActg // actg
	// KwActan represents the 'actan' function keyword.
	KwActan // actan
	// KwArccot represents the 'arccot' function keyword.
	KwArccot // arccot
	// KwArccotan represents the 'arccotan' function keyword.
	KwArccotan // arccotan
	// KwSh represents the 'sh' function keyword.
	KwSh // sh
	// KwCh represents the 'ch' function keyword.
	KwCh // ch
	// KwLog represents the 'log' function keyword.
	KwLog // log
	// KwLg represents the 'lg' function keyword.
	KwLg // lg
	// KwLn represents the 'ln' function keyword.
	KwLn // ln
	// KwSqrt represents the 'sqrt' function keyword.
	KwSqrt // sqrt

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Caret represents the caret operator token.
	Caret // ^
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Number:     "Number",
	Name:       "Name",
	KwE:        "KwE",
	KwPi:       "KwPi",
	KwSin:      "KwSin",
	KwCos:      "KwCos",
	KwTg:       "KwTg",
	KwTan:      "KwTan",
	KwCtg:      "KwCtg",
	KwCtan:     "KwCtan",
	KwCot:      "KwCot",
	KwArcsin:   "KwArcsin",
	KwAsin:     "KwAsin",
	KwArccos:   "KwArccos",
	KwAcos:     "KwAcos",
	KwArctg:    "KwArctg",
	KwArctan:   "KwArctan",
	KwAtg:      "KwAtg",
	KwAtan:     "KwAtan",
	KwArcctg:   "KwArcctg",
	KwActg:     "KwActg",
	KwActan:    "KwActan",
	KwArccot:   "KwArccot",
	KwArccotan: "KwArccotan",
	KwSh:       "KwSh",
	KwCh:       "KwCh",
	KwLog:      "KwLog",
	KwLg:       "KwLg",
	KwLn:       "KwLn",
	KwSqrt:     "KwSqrt",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Caret:      "Caret",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	Comma:      "Comma",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
