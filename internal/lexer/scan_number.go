package lexer

import (
	"errors"
	"strconv"

	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// Поддержка: 123 и 123.456. Без знака, без экспоненты, без ведущей или
// висячей точки: точка съедается только если за ней идёт цифра, иначе она
// остаётся следующему сканеру.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Переполнение не ошибка: очень длинные литералы схлопываются в ±Inf.
	val, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		lx.report("BadNumber", sp, "cannot parse number "+strconv.Quote(text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: val}
}
