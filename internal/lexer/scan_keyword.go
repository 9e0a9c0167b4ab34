package lexer

import (
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// scanKeywordOrName пробует самое длинное ключевое слово с текущей позиции
// (token.MatchKeyword). Границы слова не проверяются: `arccotan` никогда не
// лексится как arccot+an, а `ee` — это два KwE подряд. Если ключевое слово не
// подошло, одиночная строчная буква или '_' становится токеном Name.
func (lx *Lexer) scanKeywordOrName() token.Token {
	start := lx.cursor.Mark()

	rest := lx.file.Content[lx.cursor.Off:]
	if kind, text, ok := token.MatchKeyword(string(rest)); ok {
		lx.bumpN(len(text))
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: text}
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Name,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanBackslashConstant терпит латеховский ввод `\e` и `\pi`: слэш
// принимается и отбрасывается, Kind ставится по константе. Любое другое
// продолжение после слэша — ошибка; слэш становится Invalid, а лексинг
// продолжается со следующего байта.
func (lx *Lexer) scanBackslashConstant() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'

	rest := lx.file.Content[lx.cursor.Off:]
	if kind, text, ok := token.MatchKeyword(string(rest)); ok && (kind == token.KwE || kind == token.KwPi) {
		lx.bumpN(len(text))
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report("BadEscape", sp, "expected 'e' or 'pi' after backslash")
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
