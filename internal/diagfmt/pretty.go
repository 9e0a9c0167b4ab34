package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes
// с аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	path := formatPath(file, opts.PathMode, fs)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	writeSourceContext(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			notePos, _ := fs.Resolve(note.Span)
			notePath := formatPath(fs.Get(note.Span.File), opts.PathMode, fs)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", notePath, notePos.Line, notePos.Col, note.Msg)
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix #%d: %s\n", i+1, fix.Title)
			for _, edit := range fix.Edits {
				editPos, _ := fs.Resolve(edit.Span)
				editPath := formatPath(fs.Get(edit.Span.File), opts.PathMode, fs)
				fmt.Fprintf(w, "    apply=%q at %s:%d:%d\n", edit.NewText, editPath, editPos.Line, editPos.Col)
				if opts.ShowPreview {
					writeEditPreview(w, fs, edit)
				}
			}
		}
	}
}

// writeSourceContext печатает основную строку с Context строками вокруг
// и подчёркивание под основной
func writeSourceContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := int(opts.Context)
	if ctx < 0 {
		ctx = 0
	}
	first := int(start.Line) - ctx
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + ctx
	if maxLine := len(file.LineIdx) + 1; last > maxLine {
		last = maxLine
	}
	if last < int(start.Line) {
		last = int(start.Line)
	}

	gutter := len(strconv.Itoa(last))
	for lineNum := first; lineNum <= last; lineNum++ {
		line := file.GetLine(uint32(lineNum))
		fmt.Fprintf(w, " %*d | %s\n", gutter, lineNum, line)
		if lineNum == int(start.Line) {
			fmt.Fprintf(w, " %*s | %s\n", gutter, "", underline(line, start, end, opts.Color))
		}
	}
}

// underline строит ^~~~ под спаном; для многострочного спана тянет до конца строки
func underline(line string, start, end source.LineCol, colored bool) string {
	pad := int(start.Col) - 1
	if pad < 0 {
		pad = 0
	}
	if pad > len(line) {
		pad = len(line)
	}

	width := 1
	switch {
	case end.Line == start.Line && end.Col > start.Col:
		width = int(end.Col - start.Col)
	case end.Line > start.Line:
		width = len(line) - pad
	}
	if width < 1 {
		width = 1
	}

	marks := "^" + strings.Repeat("~", width-1)
	if colored {
		marks = color.New(color.FgGreen, color.Bold).Sprint(marks)
	}
	return strings.Repeat(" ", pad) + marks
}

func writeEditPreview(w io.Writer, fs *source.FileSet, edit diag.FixEdit) {
	preview, err := buildEditPreview(fs, edit)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "    preview:")
	for _, line := range preview.before {
		fmt.Fprintf(w, "      - %s\n", line)
	}
	for _, line := range preview.after {
		fmt.Fprintf(w, "      + %s\n", line)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
