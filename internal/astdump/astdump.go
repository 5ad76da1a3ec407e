/*
File    : monkey/internal/astdump/astdump.go
*/

// Package astdump prints a Monkey ast.Program as an indented tree, one
// line per node, for the `-ast` debug flag. It is adapted from the
// teacher's recursive PrintingVisitor: same indentation scheme and
// "<Kind> [<rendering>]" line shape, walking ast.Node instead of a
// visitor-dispatched parse tree.
package astdump

import (
	"bytes"
	"fmt"

	"github.com/monkeylang/monkey/ast"
)

const indentSize = 2

// Dump renders program as an indented tree of its nodes.
func Dump(program *ast.Program) string {
	var buf bytes.Buffer
	for _, stmt := range program.Statements {
		dumpNode(&buf, stmt, 0)
	}
	return buf.String()
}

func line(buf *bytes.Buffer, indent int, kind string, node ast.Node) {
	for i := 0; i < indent; i++ {
		buf.WriteString(" ")
	}
	fmt.Fprintf(buf, "%s [%s]\n", kind, node.String())
}

func dumpNode(buf *bytes.Buffer, node ast.Node, indent int) {
	switch n := node.(type) {

	case *ast.LetStatement:
		kind := "Let"
		if n.Rec {
			kind = "LetRec"
		}
		line(buf, indent, kind, n)
		dumpNode(buf, n.Value, indent+indentSize)

	case *ast.ReturnStatement:
		line(buf, indent, "Return", n)
		if n.ReturnValue != nil {
			dumpNode(buf, n.ReturnValue, indent+indentSize)
		}

	case *ast.DefStatement:
		line(buf, indent, "Def", n)
		dumpNode(buf, n.Body, indent+indentSize)

	case *ast.BlockStatement:
		line(buf, indent, "Block", n)
		for _, s := range n.Statements {
			dumpNode(buf, s, indent+indentSize)
		}

	case *ast.ExpressionStatement:
		line(buf, indent, "ExprStmt", n)
		if n.Expression != nil {
			dumpNode(buf, n.Expression, indent+indentSize)
		}

	case *ast.PrefixExpression:
		line(buf, indent, "Prefix", n)
		dumpNode(buf, n.Right, indent+indentSize)

	case *ast.InfixExpression:
		line(buf, indent, "Infix", n)
		dumpNode(buf, n.Left, indent+indentSize)
		dumpNode(buf, n.Right, indent+indentSize)

	case *ast.IfExpression:
		line(buf, indent, "If", n)
		dumpNode(buf, n.Condition, indent+indentSize)
		dumpNode(buf, n.Consequence, indent+indentSize)
		if n.Alternative != nil {
			dumpNode(buf, n.Alternative, indent+indentSize)
		}

	case *ast.FunctionLiteral:
		line(buf, indent, "Function", n)
		dumpNode(buf, n.Body, indent+indentSize)

	case *ast.CallExpression:
		line(buf, indent, "Call", n)
		dumpNode(buf, n.Function, indent+indentSize)
		for _, a := range n.Arguments {
			dumpNode(buf, a, indent+indentSize)
		}

	case *ast.ArrayLiteral:
		line(buf, indent, "Array", n)
		for _, e := range n.Elements {
			dumpNode(buf, e, indent+indentSize)
		}

	case *ast.IndexExpression:
		line(buf, indent, "Index", n)
		dumpNode(buf, n.Left, indent+indentSize)
		dumpNode(buf, n.Index, indent+indentSize)

	case *ast.Identifier:
		line(buf, indent, "Identifier", n)

	case *ast.IntegerLiteral:
		line(buf, indent, "Integer", n)

	case *ast.BooleanLiteral:
		line(buf, indent, "Boolean", n)

	case *ast.NullLiteral:
		line(buf, indent, "Null", n)

	case *ast.StringLiteral:
		line(buf, indent, "String", n)

	default:
		for i := 0; i < indent; i++ {
			buf.WriteString(" ")
		}
		fmt.Fprintf(buf, "Unknown [%T]\n", n)
	}
}
