package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// ASTNodeOutput — узел выражения в JSON-представлении
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Op       string          `json:"op,omitempty"`
	Value    *float64        `json:"value,omitempty"`
	Name     string          `json:"name,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatExprPretty печатает дерево выражения с отступами ├─/└─
func FormatExprPretty(w io.Writer, builder *ast.Builder, root ast.ExprID, fs *source.FileSet) error {
	if !root.IsValid() {
		_, err := fmt.Fprintln(w, "<no expression>")
		return err
	}
	return writeExprPretty(w, builder, root, fs, "", "")
}

func writeExprPretty(w io.Writer, builder *ast.Builder, id ast.ExprID, fs *source.FileSet, head, tail string) error {
	node := builder.Exprs.Get(id)
	if node == nil {
		_, err := fmt.Fprintf(w, "%s<nil expr>\n", head)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s (span: %s)\n",
		head, exprLabel(builder, id), formatSpan(node.Span, fs)); err != nil {
		return err
	}

	children := exprChildren(builder, id)
	for i, child := range children {
		connector, indent := "├─ ", "│  "
		if i == len(children)-1 {
			connector, indent = "└─ ", "   "
		}
		if err := writeExprPretty(w, builder, child, fs, tail+connector, tail+indent); err != nil {
			return err
		}
	}
	return nil
}

// FormatExprJSON печатает дерево выражения как вложенный JSON
func FormatExprJSON(w io.Writer, builder *ast.Builder, root ast.ExprID) error {
	output := buildExprJSON(builder, root)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildExprJSON(builder *ast.Builder, id ast.ExprID) ASTNodeOutput {
	node := builder.Exprs.Get(id)
	if node == nil {
		return ASTNodeOutput{Type: "Invalid"}
	}

	out := ASTNodeOutput{Type: node.Kind.String(), Span: node.Span}
	switch node.Kind {
	case ast.ExprNumber:
		if data, ok := builder.Exprs.Number(id); ok {
			value := data.Value
			out.Value = &value
		}
	case ast.ExprName:
		if data, ok := builder.Exprs.Name(id); ok {
			out.Name = string(data.Name)
		}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(id); ok {
			out.Op = data.Op.String()
			out.Children = []ASTNodeOutput{buildExprJSON(builder, data.Operand)}
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(id); ok {
			out.Op = data.Op.String()
			out.Children = []ASTNodeOutput{
				buildExprJSON(builder, data.Left),
				buildExprJSON(builder, data.Right),
			}
		}
	}
	return out
}

// exprLabel — метка узла: вид плюс полезная нагрузка
func exprLabel(builder *ast.Builder, id ast.ExprID) string {
	node := builder.Exprs.Get(id)
	if node == nil {
		return "<invalid>"
	}
	switch node.Kind {
	case ast.ExprNumber:
		if data, ok := builder.Exprs.Number(id); ok {
			return "Number " + strconv.FormatFloat(data.Value, 'g', -1, 64)
		}
	case ast.ExprName:
		if data, ok := builder.Exprs.Name(id); ok {
			return "Name " + string(data.Name)
		}
	case ast.ExprEuler:
		return "Euler"
	case ast.ExprPi:
		return "Pi"
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(id); ok {
			return "Unary " + data.Op.String()
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(id); ok {
			return "Binary " + data.Op.String()
		}
	}
	return "<invalid>"
}

func exprChildren(builder *ast.Builder, id ast.ExprID) []ast.ExprID {
	node := builder.Exprs.Get(id)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(id); ok {
			return []ast.ExprID{data.Operand}
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(id); ok {
			return []ast.ExprID{data.Left, data.Right}
		}
	}
	return nil
}
