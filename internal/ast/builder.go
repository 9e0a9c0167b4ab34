package ast

// Hints carries preallocation sizes for a parse.
type Hints struct{ Exprs uint }

// Builder aggregates the arenas of a single parse.
// Дерево живёт ровно один вызов: распарсили, посчитали, выбросили.
type Builder struct {
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 6
	}
	return &Builder{
		Exprs: NewExprs(hints.Exprs),
	}
}
