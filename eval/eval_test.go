/*
File    : monkey/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(input)
	program := p.ParseProgram()
	require.Emptyf(t, p.Errors(), "parser errors for %q: %v", input, p.Errors())

	e := New()
	var out bytes.Buffer
	e.SetWriter(&out)
	return e.Eval(program, environment.New())
}

func requireInteger(t *testing.T, obj object.Object, want int64) {
	t.Helper()
	i, ok := obj.(*object.Integer)
	require.Truef(t, ok, "expected *object.Integer, got %T (%+v)", obj, obj)
	require.Equal(t, want, i.Value)
}

func requireBoolean(t *testing.T, obj object.Object, want bool) {
	t.Helper()
	b, ok := obj.(*object.Boolean)
	require.Truef(t, ok, "expected *object.Boolean, got %T (%+v)", obj, obj)
	require.Equal(t, want, b.Value)
}

func requireError(t *testing.T, obj object.Object, substr string) {
	t.Helper()
	errObj, ok := obj.(*object.Error)
	require.Truef(t, ok, "expected *object.Error, got %T (%+v)", obj, obj)
	require.Contains(t, errObj.Message, substr)
}

func TestEvalIntegerArithmetic(t *testing.T) {
	requireInteger(t, testEval(t, "2 * 3 + 4 * 5;"), 26)
	requireInteger(t, testEval(t, "-5 + 10;"), 5)
	requireInteger(t, testEval(t, "(5 + 5) * 2;"), 20)
}

func TestEvalIfElseReturnsBranchValue(t *testing.T) {
	requireInteger(t, testEval(t, "if (1 < 2) { 10 } else { 20 };"), 10)
	requireInteger(t, testEval(t, "if (1 > 2) { 10 } else { 20 };"), 20)
}

func TestEvalReturnUnwrapsAtFunctionBoundary(t *testing.T) {
	input := `
	def f(x) {
		if (x > 0) {
			if (x > 5) {
				return 10;
			}
			return 1;
		}
		return 0;
	}
	f(10);
	`
	requireInteger(t, testEval(t, input), 10)
}

func TestEvalClosureCapturesDefiningEnvironment(t *testing.T) {
	input := `
	let makeAdder = fun(x) { fun(y) { x + y } };
	let add = makeAdder(3);
	add(4);
	`
	requireInteger(t, testEval(t, input), 7)
}

func TestEvalDefRecursion(t *testing.T) {
	input := `
	def fact(n) {
		if (n <= 1) { return 1; }
		return n * fact(n - 1);
	}
	fact(5);
	`
	requireInteger(t, testEval(t, input), 120)
}

func TestEvalLetRecRecursion(t *testing.T) {
	input := `
	let rec fact = fun(n) {
		if (n <= 1) { 1 } else { n * fact(n - 1) }
	};
	fact(5);
	`
	requireInteger(t, testEval(t, input), 120)
}

func TestEvalBuiltinsLenPush(t *testing.T) {
	requireInteger(t, testEval(t, "len(push([1, 2, 3], 4));"), 4)
}

func TestEvalBuiltinLenRejectsNonArray(t *testing.T) {
	requireError(t, testEval(t, `len("hello");`), "argument to `len` not supported")
}

func TestEvalBuiltinTail(t *testing.T) {
	result := testEval(t, "tail([1, 2, 3]);")
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 2)
	requireInteger(t, arr.Elements[0], 2)
	requireInteger(t, arr.Elements[1], 3)
}

func TestEvalBuiltinTailEmptyIsError(t *testing.T) {
	requireError(t, testEval(t, "tail([]);"), "tail expects a non-empty list")
}

func TestEvalIndexAssignmentViaArrayLiteral(t *testing.T) {
	input := `
	let xs = [1, 20, 3];
	xs[1];
	`
	requireInteger(t, testEval(t, input), 20)
}

func TestEvalIndexOutOfBounds(t *testing.T) {
	result := testEval(t, "[1, 2, 3][5];")
	requireError(t, result, "Out of bounds array access. Index is 5 but array length is 3")
}

func TestEvalDivisionByZero(t *testing.T) {
	requireError(t, testEval(t, "5 / 0;"), "Division by zero")
}

func TestEvalHeterogeneousEquality(t *testing.T) {
	requireBoolean(t, testEval(t, "1 == true;"), false)
	requireBoolean(t, testEval(t, "0 == false;"), false)
	requireBoolean(t, testEval(t, "null == 0;"), false)
	requireBoolean(t, testEval(t, "null == false;"), false)
	requireBoolean(t, testEval(t, `"a" == "a";`), false)
	requireBoolean(t, testEval(t, "1 == 1;"), true)
	requireBoolean(t, testEval(t, "true == true;"), true)
	requireBoolean(t, testEval(t, "null == null;"), true)
}

func TestEvalTruthiness(t *testing.T) {
	requireInteger(t, testEval(t, "if (1) { 10 } else { 20 };"), 10)
	requireInteger(t, testEval(t, "if (0) { 10 } else { 20 };"), 20)
	requireInteger(t, testEval(t, "if (true) { 10 } else { 20 };"), 10)
	requireInteger(t, testEval(t, "if (null) { 10 } else { 20 };"), 20)
}

func TestEvalUnknownIdentifier(t *testing.T) {
	requireError(t, testEval(t, "foobar;"), "Unknown identifier: foobar")
}

func TestEvalMismatchedParameterCount(t *testing.T) {
	input := `
	let add = fun(a, b) { a + b };
	add(1);
	`
	requireError(t, testEval(t, input), "Mismatched number of parameters: 1 != 2")
}

func TestEvalEmptyBlockSentinel(t *testing.T) {
	requireInteger(t, testEval(t, "if (true) { }"), emptyBlockSentinel)
}
