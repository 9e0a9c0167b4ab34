package token

import (
	"strconv"

	"github.com/Lkuropatkina/HSEproject/internal/source"
)

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment // # до конца строки
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	default:
		return "TriviaKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
