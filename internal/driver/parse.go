package driver

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/lexer"
	"github.com/Lkuropatkina/HSEproject/internal/parser"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// ParseResult — дерево одного выражения вместе с диагностиками.
// Root == ast.NoExprID, если разбор провалился.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.ExprID
	Bag     *diag.Bag
}

// Parse читает файл с диска и разбирает его как одно выражение.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics)
}

// ParseSource разбирает готовый байтовый вход.
func ParseSource(name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	// лексические и синтаксические диагностики собираются в один bag
	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.ReporterAdapter{Reporter: reporter},
	})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("max diagnostics overflow: %w", err)
	}

	result := parser.ParseExpression(fs, lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Root:    result.Root,
		Bag:     bag,
	}, nil
}
