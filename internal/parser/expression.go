package parser

import (
	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/source"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// parseExpr — точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr — парсит бинарные выражения с учётом приоритета (Pratt)
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	if !p.enterDepth() {
		return ast.NoExprID, false
	}
	defer p.exitDepth()

	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseBinaryExprWith(left, minPrec)
}

// parseBinaryExprWith — продолжает цепочку бинарных операторов от уже
// разобранного левого операнда. Выделено отдельно, чтобы одноаргументный
// log со скобками мог продолжить цепочку `^` после группы.
func (p *Parser) parseBinaryExprWith(left ast.ExprID, minPrec int) (ast.ExprID, bool) {
	for {
		tok := p.lx.Peek()
		prec, rightAssoc := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break
		}

		opTok := p.advance()

		// Для левоассоциативных операторов правый операнд парсим
		// со строго большим минимальным приоритетом
		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}

		beforeErrors := p.opts.CurrentErrors
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			if p.opts.CurrentErrors == beforeErrors {
				p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			}
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
	return left, true
}

// parseUnaryExpr — разбирает префиксы: унарный минус и функции.
// Минимальный приоритет сюда не передаётся: префикс всегда начинает операнд,
// ограничение по приоритету действует только на продолжение бинарной цепочки.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()

	if tok.Kind == token.Minus {
		opTok := p.advance()
		beforeErrors := p.opts.CurrentErrors
		// операнд минуса захватывает `^` и функции, но не `*`:
		// -x^2 == -(x^2), а -x*2 == (-x)*2
		operand, ok := p.parseBinaryExpr(precUnaryMinus)
		if !ok {
			if p.opts.CurrentErrors == beforeErrors {
				p.err(diag.SynExpectExpression, "expected expression after '-'")
			}
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewUnary(span, ast.ExprUnaryNeg, operand), true
	}

	if tok.Kind == token.KwLog {
		return p.parseLogExpr()
	}
	if tok.Kind == token.KwLg {
		return p.parseLgExpr()
	}

	if op, isFn := p.unaryFunctionOp(tok.Kind); isFn {
		opTok := p.advance()
		beforeErrors := p.opts.CurrentErrors
		// операнд функции захватывает только цепочку `^`:
		// sin 2*3 == sin(2)*3, sin 2^3 == sin(2^3)
		operand, ok := p.parseBinaryExpr(precFunction)
		if !ok {
			if p.opts.CurrentErrors == beforeErrors {
				p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			}
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}

	return p.parsePrimaryExpr()
}

// parsePrimaryExpr — атомы: число, имя, константы, группа в скобках.
// Возвращает false молча: договоримся, что ошибку формулирует вызывающий,
// у которого есть контекст.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Number:
		t := p.advance()
		return p.arenas.Exprs.NewNumber(t.Span, t.Value), true

	case tok.Kind == token.Name:
		t := p.advance()
		return p.arenas.Exprs.NewName(t.Span, t.Text[0]), true

	case tok.Kind == token.KwE:
		t := p.advance()
		return p.arenas.Exprs.NewEuler(t.Span), true

	case tok.Kind == token.KwPi:
		t := p.advance()
		return p.arenas.Exprs.NewPi(t.Span), true

	case tok.IsOpenBracket():
		return p.parseGroupExpr()

	default:
		return ast.NoExprID, false
	}
}

// parseGroupExpr — скобочная группа. Отдельного узла для неё нет:
// возвращаем внутреннее выражение как есть. Вид закрывающей скобки не
// сверяется с открывающей: `(x]` — валидная группа.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	openTok := p.advance()

	beforeErrors := p.opts.CurrentErrors
	inner, ok := p.parseExpr()
	if !ok {
		if p.opts.CurrentErrors == beforeErrors {
			p.err(diag.SynExpectExpression, "expected expression after '"+openTok.Text+"'")
		}
		return ast.NoExprID, false
	}

	if !p.lx.Peek().IsCloseBracket() {
		p.reportUnclosed("expected closing bracket to match '" + openTok.Text + "'")
		return ast.NoExprID, false
	}
	closeTok := p.advance()

	// расширяем span внутреннего узла на скобки, узла группы ведь нет
	if node := p.arenas.Exprs.Get(inner); node != nil {
		node.Span = openTok.Span.Cover(closeTok.Span)
	}
	return inner, true
}

// reportUnclosed — SynUnclosedDelimiter с фиксом "вставить ')'" на месте обрыва
func (p *Parser) reportUnclosed(msg string) {
	p.emitDiagnostic(diag.SynUnclosedDelimiter, diag.SevError, p.getDiagnosticSpan(),
		msg, p.insertCloseParen)
}

// insertCloseParen навешивает фикс со вставкой ')' в точке диагностики
func (p *Parser) insertCloseParen(b *diag.ReportBuilder) {
	sp := p.getDiagnosticSpan()
	insertPos := source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	b.WithFix("insert ')'", diag.FixEdit{Span: insertPos, NewText: ")"})
	b.WithNote(insertPos, "insert missing closing bracket")
}

// parseLogExpr — две формы log:
//
//	log(x, b)  — логарифм x по основанию b; скобки обязаны быть круглыми
//	             и стоять сразу после log, иначе это не двухаргументная форма
//	log x      — натуральный логарифм, обычный унарный операнд
//
// После `log (` решает запятая: есть — двухаргументная форма, нет — скобка
// была обычной группой и операнд продолжает цепочку `^` как у всех функций.
func (p *Parser) parseLogExpr() (ast.ExprID, bool) {
	logTok := p.advance()

	if p.at(token.LParen) {
		openTok := p.advance() // '('

		beforeErrors := p.opts.CurrentErrors
		first, ok := p.parseExpr()
		if !ok {
			if p.opts.CurrentErrors == beforeErrors {
				p.err(diag.SynExpectExpression, "expected expression after 'log('")
			}
			return ast.NoExprID, false
		}

		if p.at(token.Comma) {
			p.advance() // ','

			beforeErrors = p.opts.CurrentErrors
			base, ok := p.parseExpr()
			if !ok {
				if p.opts.CurrentErrors == beforeErrors {
					p.err(diag.SynExpectExpression, "expected log base after ','")
				}
				return ast.NoExprID, false
			}

			// двухаргументная форма закрывается только ')'
			closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter,
				"expected ')' after log base", p.insertCloseParen)
			if !ok {
				return ast.NoExprID, false
			}
			span := logTok.Span.Cover(closeTok.Span)
			return p.arenas.Exprs.NewBinary(span, ast.ExprBinaryLog, first, base), true
		}

		// запятой нет: скобка оказалась обычной группой
		if !p.lx.Peek().IsCloseBracket() {
			p.reportUnclosed("expected closing bracket to match '('")
			return ast.NoExprID, false
		}
		closeTok := p.advance()
		if node := p.arenas.Exprs.Get(first); node != nil {
			node.Span = openTok.Span.Cover(closeTok.Span)
		}

		// операнд продолжает цепочку `^`: log(2)^3 == log(2^3)
		operand, ok := p.parseBinaryExprWith(first, precFunction)
		if !ok {
			return ast.NoExprID, false
		}
		span := logTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewUnary(span, ast.ExprUnaryLn, operand), true
	}

	beforeErrors := p.opts.CurrentErrors
	operand, ok := p.parseBinaryExpr(precFunction)
	if !ok {
		if p.opts.CurrentErrors == beforeErrors {
			p.err(diag.SynExpectExpression, "expected expression after 'log'")
		}
		return ast.NoExprID, false
	}
	span := logTok.Span.Cover(p.exprSpan(operand))
	return p.arenas.Exprs.NewUnary(span, ast.ExprUnaryLn, operand), true
}

// parseLgExpr — lg x == log x по основанию 10.
// Основание — синтетический узел со span самого `lg`.
func (p *Parser) parseLgExpr() (ast.ExprID, bool) {
	lgTok := p.advance()

	beforeErrors := p.opts.CurrentErrors
	operand, ok := p.parseBinaryExpr(precFunction)
	if !ok {
		if p.opts.CurrentErrors == beforeErrors {
			p.err(diag.SynExpectExpression, "expected expression after 'lg'")
		}
		return ast.NoExprID, false
	}

	base := p.arenas.Exprs.NewNumber(lgTok.Span, 10)
	span := lgTok.Span.Cover(p.exprSpan(operand))
	return p.arenas.Exprs.NewBinary(span, ast.ExprBinaryLog, operand, base), true
}
