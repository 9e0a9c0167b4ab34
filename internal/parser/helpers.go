package parser

import (
	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/source"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool {
	return p.lx.Peek().Kind == kind
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Если текущий токен EOF или Invalid с пустым span, используем позицию после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим (decorate может
// навесить на диагностику заметки и фиксы) и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string, decorate func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.emitDiagnostic(code, diag.SevError, diagSpan, msg, decorate)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.emitDiagnostic(code, sev, sp, msg, nil)
}

func (p *Parser) emitDiagnostic(code diag.Code, sev diag.Severity, sp source.Span, msg string, decorate func(*diag.ReportBuilder)) bool {
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	b := diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
	if decorate != nil {
		decorate(b)
	}
	b.Emit()
	return true
}

// enterDepth отслеживает глубину рекурсивного спуска.
// При превышении лимита репортит SynTooDeep и возвращает false.
func (p *Parser) enterDepth() bool {
	if p.depth >= p.opts.MaxDepth {
		p.report(diag.SynTooDeep, diag.SevError, p.getDiagnosticSpan(),
			"expression is nested too deeply")
		return false
	}
	p.depth++
	return true
}

func (p *Parser) exitDepth() {
	p.depth--
}

// exprSpan — span уже построенного узла
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if node := p.arenas.Exprs.Get(id); node != nil {
		return node.Span
	}
	return p.lastSpan
}

func describeToken(tok token.Token) string {
	if tok.Text == "" {
		return tok.Kind.String()
	}
	return "'" + tok.Text + "'"
}
