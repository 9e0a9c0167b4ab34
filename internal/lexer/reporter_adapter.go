package lexer

import (
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// ReporterAdapter переводит строковые репорты лексера в diag-диагностики.
// Лексер сам не знает про коды; соответствие kind -> Code живёт здесь.
type ReporterAdapter struct {
	Reporter diag.Reporter
}

// Report реализует lexer.Reporter.
func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Reporter == nil {
		return
	}
	diag.ReportError(r.Reporter, codeForKind(kind), span, msg).Emit()
}

func codeForKind(kind string) diag.Code {
	switch kind {
	case "UnknownChar":
		return diag.LexUnknownChar
	case "BadNumber":
		return diag.LexBadNumber
	case "BadEscape":
		return diag.LexBadEscape
	default:
		return diag.LexInfo
	}
}
