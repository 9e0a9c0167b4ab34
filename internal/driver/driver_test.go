package driver

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/eval"
	"github.com/Lkuropatkina/HSEproject/internal/observ"
	"github.com/Lkuropatkina/HSEproject/internal/source"
	"github.com/Lkuropatkina/HSEproject/internal/token"
)

// ====== Тесты для EvaluateSource ======

func TestEvaluateSourceHappyPath(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("2+2*2"), EvalOptions{})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	if res.Bag.HasErrors() {
		items := res.Bag.Items()
		t.Fatalf("unexpected diagnostics: [%s] %s", items[0].Code.ID(), items[0].Message)
	}
	if res.Root == ast.NoExprID {
		t.Fatal("expected a parsed root expression")
	}
	if res.Render != "(2)+((2)*(2))" {
		t.Errorf("Render = %q, want %q", res.Render, "(2)+((2)*(2))")
	}
	if res.Value != 6 {
		t.Errorf("Value = %g, want 6", res.Value)
	}

	if len(res.Tokens) == 0 {
		t.Fatal("expected collected tokens")
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("last token = %v, want EOF", last.Kind)
	}
}

func TestEvaluateSourceSyntaxError(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("2+"), EvalOptions{})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	if !res.Bag.HasErrors() {
		t.Fatal("expected syntax diagnostics")
	}
	// частичных результатов нет
	if res.Root != ast.NoExprID {
		t.Error("expected no root for broken input")
	}
	if res.Render != "" {
		t.Errorf("Render = %q, want empty", res.Render)
	}
	if res.Value != 0 {
		t.Errorf("Value = %g, want 0", res.Value)
	}
}

// лексическая ошибка попадает в bag ровно один раз,
// хотя конвейер лексит вход дважды
func TestEvaluateSourceLexErrorNotDuplicated(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("2+@"), EvalOptions{})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	lexErrors := 0
	for _, d := range res.Bag.Items() {
		if d.Code == diag.LexUnknownChar {
			lexErrors++
		}
	}
	if lexErrors != 1 {
		t.Errorf("LexUnknownChar reported %d times, want 1", lexErrors)
	}
	if res.Root != ast.NoExprID {
		t.Error("expected no root for broken input")
	}
}

func TestEvaluateSourceStrictDomainError(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("sqrt(-1)"), EvalOptions{Strict: true})
	if err == nil {
		t.Fatal("expected a domain error in strict mode")
	}

	var domainErr *eval.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *eval.DomainError, got %T: %v", err, err)
	}
	if domainErr.Op != "sqrt" {
		t.Errorf("Op = %q, want sqrt", domainErr.Op)
	}

	// рендер тотален и не зависит от доменной политики
	if res.Render != "sqrt(-1)" {
		t.Errorf("Render = %q, want sqrt(-1)", res.Render)
	}
	if !math.IsNaN(res.Value) {
		t.Errorf("Value = %g, want NaN", res.Value)
	}

	// ошибка продублирована диагностикой с позицией
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.EvalDomain && d.Severity == diag.SevError {
			found = true
			if d.Primary.Empty() {
				t.Error("expected a non-empty span on the domain diagnostic")
			}
		}
	}
	if !found {
		t.Error("expected an EvalDomain diagnostic in the bag")
	}
}

func TestEvaluateSourceIEEESilent(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("sqrt(-1)"), EvalOptions{})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}
	if !math.IsNaN(res.Value) {
		t.Errorf("Value = %g, want NaN", res.Value)
	}
	if res.Bag.HasErrors() {
		t.Error("IEEE mode must not report domain diagnostics")
	}
}

func TestEvaluateSourceDepthLimit(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("(((1)))"), EvalOptions{MaxDepth: 2})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynTooDeep {
			found = true
		}
	}
	if !found {
		t.Error("expected SynTooDeep diagnostic with MaxDepth=2")
	}

	// дефолтной глубины при этом хватает
	res, err = EvaluateSource("test.calc", []byte("(((1)))"), EvalOptions{})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Error("default depth must accept shallow nesting")
	}
}

// ====== Тесты для Evaluate (файловый вариант) ======

func TestEvaluateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.calc")
	// хвостовой перевод строки - обычное дело для файлов
	if err := os.WriteFile(path, []byte("40+2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Evaluate(path, EvalOptions{})
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if res.Bag.HasErrors() {
		items := res.Bag.Items()
		t.Fatalf("unexpected diagnostics: [%s] %s", items[0].Code.ID(), items[0].Message)
	}
	if res.Value != 42 {
		t.Errorf("Value = %g, want 42", res.Value)
	}
}

func TestEvaluateMissingFile(t *testing.T) {
	_, err := Evaluate(filepath.Join(t.TempDir(), "no-such.calc"), EvalOptions{})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

// ====== Тесты для таймингов ======

func TestEvaluateSourceTimings(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("2+2"), EvalOptions{Timings: true})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	var timings diag.Diagnostic
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			timings, found = d, true
		}
	}
	if !found {
		t.Fatal("expected an ObsTimings diagnostic")
	}
	if !strings.HasPrefix(timings.Message, "timings (test.calc): total ") {
		t.Errorf("unexpected timings message: %q", timings.Message)
	}
	// фазы tokenize, parse и eval
	if len(timings.Notes) != 3 {
		t.Fatalf("expected 3 phase notes, got %d", len(timings.Notes))
	}
	if !strings.HasPrefix(timings.Notes[0].Msg, "tokenize: ") {
		t.Errorf("unexpected first phase note: %q", timings.Notes[0].Msg)
	}
	if !strings.Contains(timings.Notes[0].Msg, "tokens") {
		t.Errorf("expected token count in tokenize note: %q", timings.Notes[0].Msg)
	}
	if !strings.Contains(timings.Notes[2].Msg, "(ieee)") {
		t.Errorf("expected mode in eval note: %q", timings.Notes[2].Msg)
	}
}

func TestEvaluateSourceTimingsOnFailure(t *testing.T) {
	res, err := EvaluateSource("test.calc", []byte("2+"), EvalOptions{Timings: true})
	if err != nil {
		t.Fatalf("EvaluateSource() error: %v", err)
	}

	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			// до eval дело не дошло
			if len(d.Notes) != 2 {
				t.Errorf("expected 2 phase notes, got %d", len(d.Notes))
			}
			return
		}
	}
	t.Fatal("expected timings even when parsing fails")
}

func TestAppendTimingDiagnosticOverflow(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.SynExpectExpression, source.Span{}, "expected expression"))
	if bag.Len() != 1 {
		t.Fatalf("setup: bag must be full, Len=%d", bag.Len())
	}

	report := observ.Report{
		TotalMS: 1.5,
		Phases:  []observ.PhaseReport{{Name: "tokenize", DurationMS: 1.5}},
	}
	appendTimingDiagnostic(bag, report, "")

	// лимит не должен глотать тайминги
	if bag.Len() != 2 {
		t.Fatalf("expected timings past the bag limit, Len=%d", bag.Len())
	}
	last := bag.Items()[1]
	if last.Code != diag.ObsTimings {
		t.Errorf("expected ObsTimings last, got %s", last.Code.ID())
	}
}

// ====== Тесты для Tokenize и Parse ======

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("test.calc", []byte("sin(x) + 1"), 16)

	if res.Bag.HasErrors() {
		t.Fatal("unexpected diagnostics")
	}
	if len(res.Tokens) != 7 {
		// sin ( x ) + 1 EOF
		t.Fatalf("expected 7 tokens, got %d", len(res.Tokens))
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Error("expected EOF as the last token")
	}
}

func TestTokenizeFileReportsLexErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.calc")
	if err := os.WriteFile(path, []byte("2 + @\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Error("expected a lex diagnostic for '@'")
	}
}

func TestParseSource(t *testing.T) {
	res, err := ParseSource("test.calc", []byte("1 + 2 * 3"), 16)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatal("unexpected diagnostics")
	}
	if res.Root == ast.NoExprID {
		t.Fatal("expected a root expression")
	}

	node := res.Builder.Exprs.Get(res.Root)
	if node == nil || node.Kind != ast.ExprBinary {
		t.Fatalf("expected a binary root, got %v", node)
	}
}

func TestParseSourceBroken(t *testing.T) {
	res, err := ParseSource("test.calc", []byte("log(8, 2"), 16)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected diagnostics for unclosed log")
	}
	if res.Root != ast.NoExprID {
		t.Error("expected no root for broken input")
	}
}
