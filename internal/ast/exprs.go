package ast

import (
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Numbers  *Arena[ExprNumberData]
	Names    *Arena[ExprNameData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default capacity of 1<<6 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Numbers:  NewArena[ExprNumberData](capHint),
		Names:    NewArena[ExprNameData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewNumber creates a new numeric literal expression.
func (e *Exprs) NewNumber(span source.Span, value float64) ExprID {
	payload := e.Numbers.Allocate(ExprNumberData{Value: value})
	return e.new(ExprNumber, span, PayloadID(payload))
}

// Number returns the numeric data for the given expression ID.
func (e *Exprs) Number(id ExprID) (*ExprNumberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(uint32(expr.Payload)), true
}

// NewName creates a new variable expression.
func (e *Exprs) NewName(span source.Span, name byte) ExprID {
	payload := e.Names.Allocate(ExprNameData{Name: name})
	return e.new(ExprName, span, PayloadID(payload))
}

// Name returns the variable data for the given expression ID.
func (e *Exprs) Name(id ExprID) (*ExprNameData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprName {
		return nil, false
	}
	return e.Names.Get(uint32(expr.Payload)), true
}

// NewEuler creates the constant-e expression. No payload is allocated.
func (e *Exprs) NewEuler(span source.Span) ExprID {
	return e.new(ExprEuler, span, NoPayloadID)
}

// NewPi creates the constant-pi expression. No payload is allocated.
func (e *Exprs) NewPi(span source.Span) ExprID {
	return e.new(ExprPi, span, NoPayloadID)
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
