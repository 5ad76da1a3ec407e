/*
File    : monkey/parser/parser_test.go
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/monkeylang/monkey/ast"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(input)
	program := p.ParseProgram()
	require.Emptyf(t, p.Errors(), "parser errors for %q: %v", input, p.Errors())
	return program
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input      string
		wantName   string
		wantRec    bool
		wantRender string
	}{
		{"let x = 5;", "x", false, "let x = 5;"},
		{"let rec f = fun(n) { n; };", "f", true, "let rec f = fun(n) { n };"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)
		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok)
		require.Equal(t, tt.wantName, stmt.Name.Value)
		require.Equal(t, tt.wantRec, stmt.Rec)
		require.Equal(t, tt.wantRender, stmt.String())
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, "return 10;")
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.Equal(t, "10", stmt.ReturnValue.String())
}

func TestDefStatement(t *testing.T) {
	program := parseProgram(t, "def fact(n) { return n; }")
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.DefStatement)
	require.True(t, ok)
	require.Equal(t, "fact", stmt.Name.Value)
	require.Len(t, stmt.Parameters, 1)
	require.Equal(t, "n", stmt.Parameters[0].Value)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c;", "(a + (b * c))"},
		{"!(x == y);", "(!(x == y))"},
		{"-a * b", "((-a) * b)"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Equal(t, tt.want, program.String(), "input: %s", tt.input)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.Equal(t, "(x < y)", expr.Condition.String())
	require.NotNil(t, expr.Alternative)
}

func TestFunctionLiteralParameters(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fun() {};", []string{}},
		{"fun(x) {};", []string{"x"}},
		{"fun(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.params))
		for i, want := range tt.params {
			require.Equal(t, want, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionArguments(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	require.Equal(t, "add", call.Function.(*ast.Identifier).Value)
	require.Len(t, call.Arguments, 3)
}

func TestCallExpressionRejectsNonCallableCallee(t *testing.T) {
	p := New("(1 + 2)(3);")
	p.ParseProgram()
	require.True(t, p.HasErrors())
}

func TestArrayLiteral(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestIndexExpression(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	require.Equal(t, "myArray", idx.Left.(*ast.Identifier).Value)
	require.Equal(t, "(1 + 1)", idx.Index.String())
}

func TestStringLiteral(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	require.Equal(t, "hello world", lit.Value)
}

func TestParserRecordsMultipleErrors(t *testing.T) {
	input := "let = 5; let y 10; def (n) { n };"
	p := New(input)
	p.ParseProgram()
	require.True(t, p.HasErrors())
	require.GreaterOrEqual(t, len(p.Errors()), 2, fmt.Sprintf("errors: %v", p.Errors()))
}

func TestMissingPrefixParseFn(t *testing.T) {
	p := New(")")
	p.ParseProgram()
	require.True(t, p.HasErrors())
}
