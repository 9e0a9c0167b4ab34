package eval

import (
	"fmt"
	"strconv"

	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// DomainError — аргумент операции вне её математической области.
// Возвращается только в strict-режиме; Span указывает на узел выражения.
type DomainError struct {
	Op     string // каноническое имя операции: "/", "^", "sqrt", "log", ...
	Arg    float64
	Span   source.Span
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s: %s (argument %s)",
		e.Op, e.Reason, strconv.FormatFloat(e.Arg, 'g', -1, 64))
}
