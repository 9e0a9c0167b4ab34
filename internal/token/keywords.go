package token

import "sort"

var keywords = map[string]Kind{
	"e":        KwE,
	"pi":       KwPi,
	"sin":      KwSin,
	"cos":      KwCos,
	"tg":       KwTg,
	"tan":      KwTan,
	"ctg":      KwCtg,
	"ctan":     KwCtan,
	"cot":      KwCot,
	"arcsin":   KwArcsin,
	"asin":     KwAsin,
	"arccos":   KwArccos,
	"acos":     KwAcos,
	"arctg":    KwArctg,
	"arctan":   KwArctan,
	"atg":      KwAtg,
	"atan":     KwAtan,
	"arcctg":   KwArcctg,
	"actg":     KwActg,
	"actan":    KwActan,
	"arccot":   KwArccot,
	"arccotan": KwArccotan,
	"sh":       KwSh,
	"ch":       KwCh,
	"log":      KwLog,
	"lg":       KwLg,
	"ln":       KwLn,
	"sqrt":     KwSqrt,
}

// byLength держит ключевые слова по убыванию длины, порядок стабилен.
var byLength []string

func init() {
	byLength = make([]string, 0, len(keywords))
	for kw := range keywords {
		byLength = append(byLength, kw)
	}
	sort.Slice(byLength, func(i, j int) bool {
		if len(byLength[i]) != len(byLength[j]) {
			return len(byLength[i]) > len(byLength[j])
		}
		return byLength[i] < byLength[j]
	})
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// MatchKeyword находит самое длинное ключевое слово, являющееся префиксом rest.
// Самое длинное выигрывает всегда: arccotan никогда не лексится как arccot
// с хвостом из букв.
func MatchKeyword(rest string) (Kind, string, bool) {
	for _, kw := range byLength {
		if len(kw) > len(rest) {
			continue
		}
		if rest[:len(kw)] == kw {
			return keywords[kw], kw, true
		}
	}
	return Invalid, "", false
}
