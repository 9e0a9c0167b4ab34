package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
)

// treeNode — промежуточное дерево меток для ASCII-арта
type treeNode struct {
	label    string
	children []*treeNode
}

// treeBlock — отрендеренный прямоугольник строк
type treeBlock struct {
	lines []string
	width int
	root  int // колонка коннектора корня
}

const treeSpacing = 3

// FormatExprTree печатает выражение центрированным деревом:
//
//	  +
//	/ | \
//	1    *
//	    / | \
//	    2   3
func FormatExprTree(w io.Writer, builder *ast.Builder, root ast.ExprID) error {
	if !root.IsValid() {
		_, err := fmt.Fprintln(w, "<no expression>")
		return err
	}

	block := renderTree(buildTreeNode(builder, root))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func buildTreeNode(builder *ast.Builder, id ast.ExprID) *treeNode {
	node := builder.Exprs.Get(id)
	if node == nil {
		return &treeNode{label: "?"}
	}

	switch node.Kind {
	case ast.ExprNumber:
		if data, ok := builder.Exprs.Number(id); ok {
			return &treeNode{label: strconv.FormatFloat(data.Value, 'g', -1, 64)}
		}
	case ast.ExprName:
		if data, ok := builder.Exprs.Name(id); ok {
			return &treeNode{label: string(data.Name)}
		}
	case ast.ExprEuler:
		return &treeNode{label: "e"}
	case ast.ExprPi:
		return &treeNode{label: "pi"}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(id); ok {
			return &treeNode{
				label:    unaryTreeLabel(data.Op),
				children: []*treeNode{buildTreeNode(builder, data.Operand)},
			}
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(id); ok {
			return &treeNode{
				label: binaryTreeLabel(data.Op),
				children: []*treeNode{
					buildTreeNode(builder, data.Left),
					buildTreeNode(builder, data.Right),
				},
			}
		}
	}
	return &treeNode{label: "?"}
}

func unaryTreeLabel(op ast.ExprUnaryOp) string {
	if op == ast.ExprUnaryNeg {
		return "-"
	}
	return strings.ToLower(op.String())
}

func binaryTreeLabel(op ast.ExprBinaryOp) string {
	switch op {
	case ast.ExprBinaryAdd:
		return "+"
	case ast.ExprBinarySub:
		return "-"
	case ast.ExprBinaryMul:
		return "*"
	case ast.ExprBinaryDiv:
		return "/"
	case ast.ExprBinaryPow:
		return "^"
	case ast.ExprBinaryLog:
		return "log"
	default:
		return op.String()
	}
}

// renderTree рекурсивно собирает блок: метка, ряд коннекторов, блоки детей
func renderTree(node *treeNode) treeBlock {
	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{node.label},
			width: len(node.label),
			root:  len(node.label) / 2,
		}
	}

	blocks := make([]treeBlock, len(node.children))
	height := 0
	for i, child := range node.children {
		blocks[i] = renderTree(child)
		height = max(height, len(blocks[i].lines))
	}

	// дети слева направо, между блоками фиксированный зазор
	positions := make([]int, len(blocks))
	childWidth := 0
	for i, block := range blocks {
		positions[i] = childWidth + block.root
		childWidth += block.width
		if i != len(blocks)-1 {
			childWidth += treeSpacing
		}
	}

	rootPos := (positions[0] + positions[len(positions)-1]) / 2
	labelStart := rootPos - len(node.label)/2
	childShift := 0
	if labelStart < 0 {
		// метка шире поддерева: сдвигаем детей вправо
		childShift = -labelStart
		labelStart = 0
		rootPos += childShift
		for i := range positions {
			positions[i] += childShift
		}
	}

	width := max(childWidth+childShift, labelStart+len(node.label), rootPos+1)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+height)
	lines = append(lines,
		padTo(strings.Repeat(" ", labelStart)+node.label, width),
		string(connector))
	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childShift))
		for i, block := range blocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padTo(line, block.width))
			if i != len(blocks)-1 {
				sb.WriteString(strings.Repeat(" ", treeSpacing))
			}
		}
		lines = append(lines, padTo(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}

func padTo(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
