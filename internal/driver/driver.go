package driver

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/eval"
	"github.com/Lkuropatkina/HSEproject/internal/lexer"
	"github.com/Lkuropatkina/HSEproject/internal/observ"
	"github.com/Lkuropatkina/HSEproject/internal/parser"
	"github.com/Lkuropatkina/HSEproject/internal/source"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// DefaultMaxDiagnostics ограничивает bag, когда вызывающий не задал лимит.
const DefaultMaxDiagnostics = 64

// EvalOptions настраивает один прогон конвейера.
type EvalOptions struct {
	Strict         bool   // строгая доменная политика вместо IEEE
	MaxDiagnostics int    // вместимость bag; <=0 — DefaultMaxDiagnostics
	MaxDepth       uint   // лимит вложенности парсера; 0 — дефолт парсера
	Timings        bool   // добавить ObsTimings-диагностику в bag
	Jobs           int    // параллелизм EvalLines; <=0 — GOMAXPROCS
	Cache          *Cache // дисковый кеш для EvalLines; nil — выключен
}

func (o EvalOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// EvalResult — всё, что конвейер произвёл для одного выражения.
// При ошибочных диагностиках Root == ast.NoExprID, Render и Value пусты.
type EvalResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Root    ast.ExprID
	Render  string
	Value   float64
	Bag     *diag.Bag
}

// EvaluateSource гоняет выражение через tokenize → parse → render+eval.
// Ошибка возвращается только для доменных нарушений в strict-режиме
// (*eval.DomainError); лексические и синтаксические проблемы живут в Bag.
func EvaluateSource(name string, src []byte, opts EvalOptions) (*EvalResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return evaluateFile(fs, fileID, opts)
}

// Evaluate — файловый вариант EvaluateSource.
func Evaluate(path string, opts EvalOptions) (*EvalResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return evaluateFile(fs, fileID, opts)
}

func evaluateFile(fs *source.FileSet, fileID source.FileID, opts EvalOptions) (*EvalResult, error) {
	file := fs.Get(fileID)
	maxDiag := opts.maxDiagnostics()

	bag := diag.NewBag(maxDiag)
	reporter := diag.BagReporter{Bag: bag}
	timer := observ.NewTimer()

	result := &EvalResult{
		FileSet: fs,
		File:    file,
		Root:    ast.NoExprID,
		Bag:     bag,
	}

	// токенизация: единственный проход с репортером, токены в результат
	tokenizeIdx := timer.Begin("tokenize")
	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.ReporterAdapter{Reporter: reporter},
	})
	for {
		tok := lx.Next()
		result.Tokens = append(result.Tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	timer.End(tokenizeIdx, fmt.Sprintf("%d tokens", len(result.Tokens)))

	// разбор: свежий лексер без репортера, лексические ошибки уже собраны
	parseIdx := timer.Begin("parse")
	maxErrors, err := safecast.Conv[uint](maxDiag)
	if err != nil {
		return nil, fmt.Errorf("max diagnostics overflow: %w", err)
	}
	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseExpression(fs, lexer.New(file, lexer.Options{}), builder, parser.Options{
		MaxErrors: maxErrors,
		MaxDepth:  opts.MaxDepth,
		Reporter:  reporter,
	})
	timer.End(parseIdx, "")

	result.Builder = builder

	if bag.HasErrors() || parsed.Root == ast.NoExprID {
		// частичных результатов не выдаём: дерево с ошибками не считаем
		finishTimings(bag, timer, opts, file)
		return result, nil
	}
	result.Root = parsed.Root

	evalIdx := timer.Begin("eval")
	result.Render = eval.Render(builder, parsed.Root)
	value, evalErr := eval.Value(builder, parsed.Root, eval.Options{Strict: opts.Strict})
	result.Value = value
	if opts.Strict {
		timer.End(evalIdx, "strict")
	} else {
		timer.End(evalIdx, "ieee")
	}

	if evalErr != nil {
		reportDomainError(bag, evalErr)
		finishTimings(bag, timer, opts, file)
		return result, evalErr
	}

	finishTimings(bag, timer, opts, file)
	return result, nil
}

func finishTimings(bag *diag.Bag, timer *observ.Timer, opts EvalOptions, file *source.File) {
	if !opts.Timings {
		return
	}
	path := ""
	if file != nil {
		path = file.FormatPath("auto", "")
	}
	appendTimingDiagnostic(bag, timer.Report(), path)
}

// reportDomainError дублирует strict-ошибку в bag, чтобы diagfmt
// показал её с позицией и подчёркиванием.
func reportDomainError(bag *diag.Bag, err error) {
	var domainErr *eval.DomainError
	if !errors.As(err, &domainErr) {
		return
	}
	bag.Add(diag.New(diag.SevError, diag.EvalDomain, domainErr.Span, domainErr.Error()))
}
