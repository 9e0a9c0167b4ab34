package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunPlain — линейный цикл для неинтерактивного ввода: тот же вывод,
// что и в TUI, но без стилей. Завершается по EOF или по слову exit.
func RunPlain(in io.Reader, out io.Writer, opts Options) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		e := evalEntry(line, opts)
		for _, d := range e.diags {
			fmt.Fprintln(out, d.text)
		}
		if e.render != "" {
			fmt.Fprintln(out, "tree representation: "+e.render)
			fmt.Fprintln(out, "tree value: "+e.value)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
