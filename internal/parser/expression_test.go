package parser

import (
	"strconv"
	"testing"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/lexer"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// ====== Хелперы ======

func parseTestInput(t *testing.T, input string, opts Options) (Result, *ast.Builder, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.calc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.ReporterAdapter{Reporter: reporter},
	})
	arenas := ast.NewBuilder(ast.Hints{})

	if opts.MaxErrors == 0 {
		opts.MaxErrors = 100
	}
	opts.Reporter = reporter

	res := ParseExpression(fs, lx, arenas, opts)
	return res, arenas, bag
}

// mustParseShape — парсит вход без ошибок и возвращает структуру дерева строкой
func mustParseShape(t *testing.T, input string) string {
	t.Helper()
	res, arenas, bag := parseTestInput(t, input, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %s", input, diagnosticsSummary(bag))
	}
	if res.Root == ast.NoExprID {
		t.Fatalf("no root expression for %q", input)
	}
	return exprShape(arenas, res.Root)
}

// exprShape — компактная строка вида Add(2, Mul(3, 4)) для сравнения структуры
func exprShape(arenas *ast.Builder, id ast.ExprID) string {
	node := arenas.Exprs.Get(id)
	if node == nil {
		return "<nil>"
	}
	switch node.Kind {
	case ast.ExprNumber:
		data, ok := arenas.Exprs.Number(id)
		if !ok {
			return "<bad number>"
		}
		return strconv.FormatFloat(data.Value, 'g', -1, 64)
	case ast.ExprName:
		data, ok := arenas.Exprs.Name(id)
		if !ok {
			return "<bad name>"
		}
		return string(data.Name)
	case ast.ExprEuler:
		return "e"
	case ast.ExprPi:
		return "pi"
	case ast.ExprUnary:
		data, ok := arenas.Exprs.Unary(id)
		if !ok {
			return "<bad unary>"
		}
		return data.Op.String() + "(" + exprShape(arenas, data.Operand) + ")"
	case ast.ExprBinary:
		data, ok := arenas.Exprs.Binary(id)
		if !ok {
			return "<bad binary>"
		}
		return data.Op.String() + "(" + exprShape(arenas, data.Left) + ", " + exprShape(arenas, data.Right) + ")"
	default:
		return "<unknown>"
	}
}

// ====== Тесты атомов ======

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "42", "42"},
		{"float", "3.14", "3.14"},
		{"zero", "0", "0"},
		{"name", "x", "x"},
		{"underscore_name", "_", "_"},
		{"euler", "e", "e"},
		{"pi", "pi", "pi"},
		{"euler_backslash", "\\e", "e"},
		{"pi_backslash", "\\pi", "pi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты бинарных операторов ======

func TestBinaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"addition", "2+3", "Add(2, 3)"},
		{"subtraction", "2-3", "Sub(2, 3)"},
		{"multiplication", "2*3", "Mul(2, 3)"},
		{"division", "8/2", "Div(8, 2)"},
		{"power", "2^3", "Pow(2, 3)"},
		{"names", "x+y", "Add(x, y)"},
		{"constants", "2*pi", "Mul(2, pi)"},
		{"euler_power", "e^x", "Pow(e, x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты приоритетов ======

// Лестница приоритетов здесь нестандартная, поэтому формы проверяются
// против структуры дерева, а не только против "что-то распарсилось".
func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mul_before_add", "2+3*4", "Add(2, Mul(3, 4))"},
		{"mul_before_add_left", "2*3+4", "Add(Mul(2, 3), 4)"},
		{"add_left_assoc", "2-3-4", "Sub(Sub(2, 3), 4)"},
		{"div_left_assoc", "8/2/2", "Div(Div(8, 2), 2)"},
		{"pow_left_assoc", "2^3^2", "Pow(Pow(2, 3), 2)"},
		{"pow_above_mul", "2*3^2", "Mul(2, Pow(3, 2))"},
		{"pow_above_mul_left", "2^3*4", "Mul(Pow(2, 3), 4)"},
		{"full_ladder", "2+3*4^2", "Add(2, Mul(3, Pow(4, 2)))"},
		{"parens_override", "(2+3)*4", "Mul(Add(2, 3), 4)"},
		{"parens_in_pow", "2^(3^2)", "Pow(2, Pow(3, 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты унарного минуса ======

func TestUnaryMinus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "-5", "Neg(5)"},
		{"double", "--x", "Neg(Neg(x))"},
		{"binds_tighter_than_mul", "-x*2", "Mul(Neg(x), 2)"},
		{"binds_looser_than_pow", "-x^2", "Neg(Pow(x, 2))"},
		{"left_operand", "-2-3", "Sub(Neg(2), 3)"},
		{"rhs_of_pow", "2^-3", "Pow(2, Neg(3))"},
		{"both_sides_of_pow", "-2^-3", "Neg(Pow(2, Neg(3)))"},
		{"captures_function", "-sin x", "Neg(Sin(x))"},
		{"inside_function", "sin -x", "Sin(Neg(x))"},
		{"inside_function_pow", "sin -x^2", "Sin(Neg(Pow(x, 2)))"},
		{"grouped", "(-5)", "Neg(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты операндов функций ======

// Операнд функции без скобок захватывает ровно цепочку `^`.
func TestFunctionOperands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare_operand", "sin 2", "Sin(2)"},
		{"stops_at_mul", "sin 2*3", "Mul(Sin(2), 3)"},
		{"stops_at_add", "sin 2+3", "Add(Sin(2), 3)"},
		{"captures_pow", "sin 2^3", "Sin(Pow(2, 3))"},
		{"captures_pow_chain", "sin 2^3^2", "Sin(Pow(Pow(2, 3), 2))"},
		{"captures_name_pow", "sin x^2", "Sin(Pow(x, 2))"},
		{"as_pow_rhs", "2^sin 3", "Pow(2, Sin(3))"},
		{"pow_rhs_with_pow", "2^sin 3^2", "Pow(2, Sin(Pow(3, 2)))"},
		{"chained_functions", "sin sin x", "Sin(Sin(x))"},
		{"mixed_functions", "sin cos x", "Sin(Cos(x))"},
		{"paren_operand", "sin(2*3)", "Sin(Mul(2, 3))"},
		{"paren_continues_pow", "sin(2)^3", "Sin(Pow(2, 3))"},
		{"sqrt", "sqrt 16", "Sqrt(16)"},
		{"sqrt_pow", "sqrt 16^2", "Sqrt(Pow(16, 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты синонимов функций ======

// Синонимы сводятся к одной унарной операции ещё на этапе парсинга.
func TestFunctionSynonyms(t *testing.T) {
	tests := []struct {
		keyword string
		want    ast.ExprUnaryOp
	}{
		{"sin", ast.ExprUnarySin},
		{"cos", ast.ExprUnaryCos},
		{"tg", ast.ExprUnaryTan},
		{"tan", ast.ExprUnaryTan},
		{"ctg", ast.ExprUnaryCot},
		{"ctan", ast.ExprUnaryCot},
		{"cot", ast.ExprUnaryCot},
		{"arcsin", ast.ExprUnaryArcsin},
		{"asin", ast.ExprUnaryArcsin},
		{"arccos", ast.ExprUnaryArccos},
		{"acos", ast.ExprUnaryArccos},
		{"arctg", ast.ExprUnaryArctan},
		{"arctan", ast.ExprUnaryArctan},
		{"atg", ast.ExprUnaryArctan},
		{"atan", ast.ExprUnaryArctan},
		{"arcctg", ast.ExprUnaryArccot},
		{"actg", ast.ExprUnaryArccot},
		{"actan", ast.ExprUnaryArccot},
		{"arccot", ast.ExprUnaryArccot},
		{"arccotan", ast.ExprUnaryArccot},
		{"sh", ast.ExprUnarySinh},
		{"ch", ast.ExprUnaryCosh},
		{"ln", ast.ExprUnaryLn},
		{"log", ast.ExprUnaryLn},
		{"sqrt", ast.ExprUnarySqrt},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			res, arenas, bag := parseTestInput(t, tt.keyword+" x", Options{})
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			data, ok := arenas.Exprs.Unary(res.Root)
			if !ok {
				t.Fatalf("expected unary root for %q", tt.keyword+" x")
			}
			if data.Op != tt.want {
				t.Errorf("op mismatch for %q: got %v, want %v", tt.keyword, data.Op, tt.want)
			}
		})
	}
}

// ====== Тесты форм log ======

func TestLogForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare_log", "log 2", "Ln(2)"},
		{"bare_ln", "ln 2", "Ln(2)"},
		{"paren_log", "log(2)", "Ln(2)"},
		{"two_arg", "log(8, 2)", "Log(8, 2)"},
		{"two_arg_no_space", "log(8,2)", "Log(8, 2)"},
		{"two_arg_space_before_paren", "log (8, 2)", "Log(8, 2)"},
		{"two_arg_exprs", "log(2+3, 10)", "Log(Add(2, 3), 10)"},
		{"two_arg_nested", "log(log(8, 2), 2)", "Log(Log(8, 2), 2)"},
		{"lg", "lg 100", "Log(100, 10)"},
		{"lg_paren", "lg(100)", "Log(100, 10)"},
		{"log_paren_continues_pow", "log(2)^3", "Ln(Pow(2, 3))"},
		{"log_bare_captures_pow", "log 2^3", "Ln(Pow(2, 3))"},
		{"log_paren_stops_at_mul", "log(2)*3", "Mul(Ln(2), 3)"},
		{"two_arg_then_pow", "log(8, 2)^2", "Pow(Log(8, 2), 2)"},
		{"two_arg_as_operand", "sin log(8, 2)", "Sin(Log(8, 2))"},
		{"log_brace_group", "log{2}", "Ln(2)"},
		{"log_bracket_group", "log[2]", "Ln(2)"},
		{"ln_of_e", "ln e", "Ln(e)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты скобочных групп ======

// Скобки трёх видов взаимозаменяемы: любая закрывающая закрывает любую открывающую.
func TestBracketGroups(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"parens", "(7)", "7"},
		{"braces", "{7}", "7"},
		{"brackets", "[7]", "7"},
		{"mismatched_paren_bracket", "(x]", "x"},
		{"mismatched_brace_paren", "{x)", "x"},
		{"nested_same", "((((7))))", "7"},
		{"nested_mixed", "([{7}])", "7"},
		{"mixed_expression", "{1+2]*[3}", "Mul(Add(1, 2), 3)"},
		{"group_changes_precedence", "2*(3+4)", "Mul(2, Add(3, 4))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParseShape(t, tt.input)
			if got != tt.want {
				t.Errorf("shape mismatch for %q:\n  got  %s\n  want %s", tt.input, got, tt.want)
			}
		})
	}
}

// ====== Тесты спанов ======

func TestExpressionSpans(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart uint32
		wantEnd   uint32
	}{
		{"binary_covers_both", "2+3", 0, 3},
		{"leading_space_excluded", " 2+3 ", 1, 4},
		{"function_covers_operand", "sin x", 0, 5},
		{"two_arg_log_covers_paren", "log(8, 2)", 0, 9},
		{"unary_minus", "-42", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, arenas, bag := parseTestInput(t, tt.input, Options{})
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			node := arenas.Exprs.Get(res.Root)
			if node == nil {
				t.Fatal("nil root node")
			}
			if node.Span.Start != tt.wantStart || node.Span.End != tt.wantEnd {
				t.Errorf("span mismatch for %q: got %d-%d, want %d-%d",
					tt.input, node.Span.Start, node.Span.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

// Основание синтетического узла lg указывает на само ключевое слово.
func TestLgSyntheticBaseSpan(t *testing.T) {
	res, arenas, bag := parseTestInput(t, "lg 100", Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	data, ok := arenas.Exprs.Binary(res.Root)
	if !ok {
		t.Fatal("expected binary root")
	}
	if data.Op != ast.ExprBinaryLog {
		t.Fatalf("expected Log op, got %v", data.Op)
	}
	baseNode := arenas.Exprs.Get(data.Right)
	if baseNode.Span.Start != 0 || baseNode.Span.End != 2 {
		t.Errorf("synthetic base span: got %d-%d, want 0-2", baseNode.Span.Start, baseNode.Span.End)
	}
	baseData, ok := arenas.Exprs.Number(data.Right)
	if !ok || baseData.Value != 10 {
		t.Errorf("synthetic base value: got %v, want 10", baseData)
	}
}
