package parser

import (
	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/lexer"
	"github.com/Lkuropatkina/HSEproject/internal/source"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// DefaultMaxDepth ограничивает вложенность выражений, чтобы рекурсивный
// спуск не проваливался в бесконечную глубину на входах вроде "((((((...".
const DefaultMaxDepth = 200

type Options struct {
	MaxErrors     uint // 0 — без ограничения
	MaxDepth      uint // 0 — взять DefaultMaxDepth
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough сообщает, достигнут ли лимит ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result — результат разбора одного выражения.
// Root == ast.NoExprID означает, что разбор провалился; подробности в Bag.
type Result struct {
	Root ast.ExprID
	Bag  *diag.Bag
}

type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
	depth    uint
}

// ParseExpression разбирает весь вход как ровно одно выражение.
// Хвост после выражения — ошибка, пустой вход — тоже.
func ParseExpression(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		lx:     lx,
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}

	root := p.parseTop()

	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = r.Bag
	case *diag.BagReporter:
		bag = r.Bag
	}
	return Result{Root: root, Bag: bag}
}

func (p *Parser) parseTop() ast.ExprID {
	if p.at(token.EOF) {
		p.err(diag.SynExpectExpression, "expected expression, got end of input")
		return ast.NoExprID
	}

	beforeErrors := p.opts.CurrentErrors
	root, ok := p.parseExpr()
	if !ok {
		// договоримся, что обрабатываем все ошибки до этого момента;
		// если никто ничего не сказал — скажем хотя бы общую
		if p.opts.CurrentErrors == beforeErrors {
			p.err(diag.SynExpectExpression, "expected expression")
		}
		return ast.NoExprID
	}

	if !p.at(token.EOF) {
		tok := p.lx.Peek()
		p.report(diag.SynTrailingTokens, diag.SevError, p.getDiagnosticSpan(),
			"unexpected input after expression: "+describeToken(tok))
		return ast.NoExprID
	}
	return root
}
