package parser

import (
	"strings"
	"testing"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
)

// ====== Тесты ошибок разбора ======

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"empty_input", "", diag.SynExpectExpression},
		{"only_spaces", "   ", diag.SynExpectExpression},
		{"only_comment", "# nothing here", diag.SynExpectExpression},
		{"unclosed_paren", "(3+4", diag.SynUnclosedDelimiter},
		{"unclosed_nested", "((3)", diag.SynUnclosedDelimiter},
		{"comma_in_group", "(3,4)", diag.SynUnclosedDelimiter},
		{"dangling_plus", "3+", diag.SynExpectExpression},
		{"dangling_pow", "2^", diag.SynExpectExpression},
		{"dangling_minus", "-", diag.SynExpectExpression},
		{"bare_function", "sin", diag.SynExpectExpression},
		{"empty_group", "()", diag.SynExpectExpression},
		{"empty_function_call", "sin()", diag.SynExpectExpression},
		{"leading_star", "*3", diag.SynExpectExpression},
		{"double_star", "2**3", diag.SynExpectExpression},
		{"trailing_number", "3 4", diag.SynTrailingTokens},
		{"trailing_comma", "3,4", diag.SynTrailingTokens},
		{"trailing_close", "3)", diag.SynTrailingTokens},
		{"log_empty_parens", "log()", diag.SynExpectExpression},
		{"log_missing_first", "log(,2)", diag.SynExpectExpression},
		{"log_missing_base", "log(8,)", diag.SynExpectExpression},
		{"log_two_arg_wrong_close", "log(8, 2]", diag.SynUnclosedDelimiter},
		{"log_two_arg_unclosed", "log(8, 2", diag.SynUnclosedDelimiter},
		{"log_brace_comma", "log{8, 2}", diag.SynUnclosedDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, bag := parseTestInput(t, tt.input, Options{})
			if res.Root != ast.NoExprID {
				t.Errorf("expected failed parse for %q, got valid root", tt.input)
			}
			if !bag.HasErrors() {
				t.Fatalf("expected errors for %q, got none", tt.input)
			}
			if !hasDiagCode(bag, tt.wantCode) {
				t.Errorf("expected code %s for %q, got: %s",
					tt.wantCode.ID(), tt.input, diagnosticsSummary(bag))
			}
		})
	}
}

// Ошибка лексера не должна давать каскад из парсерных ошибок:
// к LexUnknownChar добавляется максимум одна SynExpectExpression.
func TestParseAfterLexError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad_char_alone", "@"},
		{"bad_char_after_op", "3+@"},
		{"bad_char_operand", "sin @"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, bag := parseTestInput(t, tt.input, Options{})
			if res.Root != ast.NoExprID {
				t.Errorf("expected failed parse for %q", tt.input)
			}
			if !hasDiagCode(bag, diag.LexUnknownChar) {
				t.Errorf("expected lexer error for %q, got: %s", tt.input, diagnosticsSummary(bag))
			}
			synCount := 0
			for _, d := range bag.Items() {
				if d.Code == diag.SynExpectExpression {
					synCount++
				}
			}
			if synCount > 1 {
				t.Errorf("error cascade for %q: %s", tt.input, diagnosticsSummary(bag))
			}
		})
	}
}

// ====== Тесты ограничения глубины ======

func TestMaxDepth(t *testing.T) {
	t.Run("default_limit_hit", func(t *testing.T) {
		input := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
		res, _, bag := parseTestInput(t, input, Options{})
		if res.Root != ast.NoExprID {
			t.Error("expected failed parse for deeply nested input")
		}
		if !hasDiagCode(bag, diag.SynTooDeep) {
			t.Errorf("expected SynTooDeep, got: %s", diagnosticsSummary(bag))
		}
	})

	t.Run("default_limit_not_hit", func(t *testing.T) {
		input := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)
		res, _, bag := parseTestInput(t, input, Options{})
		if bag.HasErrors() {
			t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
		}
		if res.Root == ast.NoExprID {
			t.Error("expected valid root")
		}
	})

	t.Run("custom_limit", func(t *testing.T) {
		// глубина растёт на 1 на каждую открытую скобку плюс 1 на вход
		deep := strings.Repeat("(", 8) + "1" + strings.Repeat(")", 8)
		res, _, bag := parseTestInput(t, deep, Options{MaxDepth: 8})
		if res.Root != ast.NoExprID || !hasDiagCode(bag, diag.SynTooDeep) {
			t.Errorf("expected SynTooDeep at depth 8, got: %s", diagnosticsSummary(bag))
		}

		ok := strings.Repeat("(", 7) + "1" + strings.Repeat(")", 7)
		res, _, bag = parseTestInput(t, ok, Options{MaxDepth: 8})
		if bag.HasErrors() || res.Root == ast.NoExprID {
			t.Errorf("expected clean parse at depth 7, got: %s", diagnosticsSummary(bag))
		}
	})

	t.Run("unary_chain_hits_limit", func(t *testing.T) {
		input := strings.Repeat("-", 300) + "1"
		res, _, bag := parseTestInput(t, input, Options{})
		if res.Root != ast.NoExprID || !hasDiagCode(bag, diag.SynTooDeep) {
			t.Errorf("expected SynTooDeep, got: %s", diagnosticsSummary(bag))
		}
	})

	t.Run("flat_chain_does_not_accumulate", func(t *testing.T) {
		// левоассоциативная цепочка не углубляет рекурсию
		input := "1" + strings.Repeat("+1", 500)
		res, _, bag := parseTestInput(t, input, Options{})
		if bag.HasErrors() || res.Root == ast.NoExprID {
			t.Errorf("expected clean parse of flat chain, got: %s", diagnosticsSummary(bag))
		}
	})
}

// ====== Тесты точки входа ======

func TestParseExpressionResult(t *testing.T) {
	t.Run("bag_extracted_from_reporter", func(t *testing.T) {
		res, _, bag := parseTestInput(t, "1+2", Options{})
		if res.Bag != bag {
			t.Error("Result.Bag should point at the reporter's bag")
		}
	})

	t.Run("success_leaves_no_errors", func(t *testing.T) {
		res, _, bag := parseTestInput(t, "3+7*(83-75)/7+(-5)", Options{})
		if bag.HasErrors() {
			t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
		}
		if res.Root == ast.NoExprID {
			t.Error("expected valid root")
		}
	})

	t.Run("failure_reports_exactly_once", func(t *testing.T) {
		_, _, bag := parseTestInput(t, "2^", Options{})
		if bag.Len() != 1 {
			t.Errorf("expected exactly one diagnostic, got: %s", diagnosticsSummary(bag))
		}
	})

	t.Run("max_errors_respected", func(t *testing.T) {
		_, _, bag := parseTestInput(t, "@@@@@", Options{MaxErrors: 2})
		// лексер кладёт свои ошибки напрямую, парсер ограничен лимитом
		if !bag.HasErrors() {
			t.Error("expected errors")
		}
	})
}

func TestTrailingTokensSpan(t *testing.T) {
	_, _, bag := parseTestInput(t, "1+2 9", Options{})
	if !hasDiagCode(bag, diag.SynTrailingTokens) {
		t.Fatalf("expected SynTrailingTokens, got: %s", diagnosticsSummary(bag))
	}
	for _, d := range bag.Items() {
		if d.Code == diag.SynTrailingTokens {
			if d.Primary.Start != 4 || d.Primary.End != 5 {
				t.Errorf("trailing diagnostic span: got %d-%d, want 4-5", d.Primary.Start, d.Primary.End)
			}
		}
	}
}

func TestDanglingOperatorSpan(t *testing.T) {
	// "3+" — ошибка указывает на позицию сразу после оператора
	_, _, bag := parseTestInput(t, "3+", Options{})
	if !hasDiagCode(bag, diag.SynExpectExpression) {
		t.Fatalf("expected SynExpectExpression, got: %s", diagnosticsSummary(bag))
	}
	for _, d := range bag.Items() {
		if d.Code == diag.SynExpectExpression {
			if d.Primary.Start != 2 || d.Primary.End != 2 {
				t.Errorf("diagnostic span: got %d-%d, want 2-2", d.Primary.Start, d.Primary.End)
			}
		}
	}
}

func TestUnclosedDelimiterFix(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		insertPos uint32
	}{
		{"group", "(1+2", 4},
		{"log_two_args", "log(8, 2", 8},
		{"log_group", "log(2", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag := parseTestInput(t, tt.input, Options{})
			if !hasDiagCode(bag, diag.SynUnclosedDelimiter) {
				t.Fatalf("expected SynUnclosedDelimiter, got: %s", diagnosticsSummary(bag))
			}
			for _, d := range bag.Items() {
				if d.Code != diag.SynUnclosedDelimiter {
					continue
				}
				if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
					t.Fatalf("expected one fix with one edit, got %+v", d.Fixes)
				}
				edit := d.Fixes[0].Edits[0]
				if edit.NewText != ")" {
					t.Errorf("fix edit text: got %q, want \")\"", edit.NewText)
				}
				if edit.Span.Start != tt.insertPos || edit.Span.End != tt.insertPos {
					t.Errorf("fix insert position: got %d-%d, want %d-%d",
						edit.Span.Start, edit.Span.End, tt.insertPos, tt.insertPos)
				}
				if len(d.Notes) != 1 {
					t.Fatalf("expected one note, got %+v", d.Notes)
				}
			}
		})
	}
}
