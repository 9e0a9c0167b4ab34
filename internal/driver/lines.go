package driver

import (
	"context"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// LineResult — итог вычисления одной строки батч-файла.
type LineResult struct {
	Line    int    // 1-based номер строки входного файла
	Expr    string // выражение без хвостовых пробелов
	Render  string
	Value   float64
	Cached  bool
	FileSet *source.FileSet // для резолва спанов диагностик, nil при попадании в кеш
	Bag     *diag.Bag
	Err     error
}

// exprLine — строка, дожившая до вычисления
type exprLine struct {
	num  int
	text string
}

// splitExprLines выбирает из файла значащие строки:
// пустые и #-комментарии пропускаются, нумерация исходная.
func splitExprLines(content string) []exprLine {
	var lines []exprLine
	for i, raw := range strings.Split(content, "\n") {
		text := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, exprLine{num: i + 1, text: text})
	}
	return lines
}

// EvalLines вычисляет файл построчно: одна строка — одно выражение.
// Строки независимы: ошибка одной не трогает остальные, результаты
// возвращаются во входном порядке.
func EvalLines(ctx context.Context, path string, opts EvalOptions) ([]LineResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := splitExprLines(string(content))
	if len(lines) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]LineResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, line := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = evalOneLine(path, line, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func evalOneLine(path string, line exprLine, opts EvalOptions) LineResult {
	res := LineResult{Line: line.num, Expr: line.text}

	// на отдельной строке тайминги бесполезны
	lineOpts := opts
	lineOpts.Timings = false

	key := ExprKey(line.text, opts.Strict)
	if opts.Cache != nil {
		var payload CachePayload
		if ok, err := opts.Cache.Get(key, line.text, opts.Strict, &payload); err == nil && ok {
			res.Render = payload.Render
			res.Value = payload.Value
			res.Cached = true
			res.Bag = diag.NewBag(1)
			return res
		}
		// битую запись игнорируем, после вычисления перепишем
	}

	out, err := EvaluateSource(path, []byte(line.text), lineOpts)
	if err != nil {
		res.Err = err
	}
	if out != nil {
		res.Render = out.Render
		res.Value = out.Value
		res.FileSet = out.FileSet
		res.Bag = out.Bag
	}

	if opts.Cache != nil && err == nil && out != nil &&
		out.Root != ast.NoExprID && !out.Bag.HasErrors() {
		payload := CachePayload{
			Schema: cacheSchemaVersion,
			Expr:   line.text,
			Render: out.Render,
			Value:  out.Value,
			Strict: opts.Strict,
		}
		// кеш негарантийный: ошибку записи строка переживёт
		_ = opts.Cache.Put(key, &payload)
	}
	return res
}
