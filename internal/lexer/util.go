package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущий байт как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune читает текущий байт как руну и перемещает курсор на размер руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	lx.bumpN(sz)
}

// bumpN перемещает курсор на n байт вперёд
func (lx *Lexer) bumpN(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("bumpN overflow: %w", err))
	}
	lx.cursor.Off += un
}

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// Строчная латинская буква или '_': начало ключевого слова либо Name.
func isNameStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z')
}
