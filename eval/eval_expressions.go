/*
File    : monkey/eval/eval_expressions.go
*/
package eval

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
)

// evalIdentifier resolves a bare identifier reference (not in call
// position): the environment chain first, then the builtin table. A name
// found in the environment bound to the SelfRef sentinel (mid-evaluation
// of its own `let rec` initializer) resolves to the current self-function
// slot. Anything else is an unknown identifier.
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		if _, isSelf := val.(*object.SelfRef); isSelf {
			if e.selfFn != nil {
				return e.selfFn
			}
			return newError("Unknown identifier: %s", node.Value)
		}
		return val
	}

	if builtin, ok := e.builtins[node.Value]; ok {
		return builtin
	}

	return newError("Unknown identifier: %s", node.Value)
}

// evalPrefixExpression dispatches `!` (boolean negation) and `-` (integer
// negation); any other operator/type pairing is an error.
func (e *Evaluator) evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		b, ok := right.(*object.Boolean)
		if !ok {
			return newError("unknown operator: !%s", right.Type())
		}
		return nativeBoolToBooleanObject(!b.Value)
	case "-":
		i, ok := right.(*object.Integer)
		if !ok {
			return newError("unknown operator: -%s", right.Type())
		}
		return &object.Integer{Value: -i.Value}
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

// evalInfixExpression dispatches binary operators. `+ - * / < > <= >=`
// require both operands to be integers; `==`/`!=` are heterogeneous and
// handled by object.Equal; any other combination is an error.
func (e *Evaluator) evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch operator {
	case "==":
		return nativeBoolToBooleanObject(object.Equal(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!object.Equal(left, right))
	}

	leftInt, leftOk := left.(*object.Integer)
	rightInt, rightOk := right.(*object.Integer)
	if !leftOk || !rightOk {
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}

	switch operator {
	case "+":
		return &object.Integer{Value: leftInt.Value + rightInt.Value}
	case "-":
		return &object.Integer{Value: leftInt.Value - rightInt.Value}
	case "*":
		return &object.Integer{Value: leftInt.Value * rightInt.Value}
	case "/":
		if rightInt.Value == 0 {
			return newError("Division by zero")
		}
		return &object.Integer{Value: leftInt.Value / rightInt.Value}
	case "<":
		return nativeBoolToBooleanObject(leftInt.Value < rightInt.Value)
	case ">":
		return nativeBoolToBooleanObject(leftInt.Value > rightInt.Value)
	case "<=":
		return nativeBoolToBooleanObject(leftInt.Value <= rightInt.Value)
	case ">=":
		return nativeBoolToBooleanObject(leftInt.Value >= rightInt.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalIfExpression evaluates the condition and branches per object.Truthy;
// an absent alternative yields Null.
func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *environment.Environment) object.Object {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if object.Truthy(condition) {
		return e.evalBlockStatement(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.evalBlockStatement(ie.Alternative, env)
	}
	return NULL
}

// evalExpressions evaluates a list of expressions left-to-right, aborting
// and returning a one-element slice holding the first error encountered.
func (e *Evaluator) evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Object {
	result := make([]object.Object, 0, len(exps))
	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

// evalIndexExpression requires an integer index and an array collection,
// and bounds-checks the access.
func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *environment.Environment) object.Object {
	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}
	idx, ok := index.(*object.Integer)
	if !ok {
		return newError("index operator expects an integer, got %s", index.Type())
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	arr, ok := left.(*object.Array)
	if !ok {
		return newError("index operator not supported: %s", left.Type())
	}

	i := idx.Value
	if i < 0 || i >= int64(len(arr.Elements)) {
		return newError("Out of bounds array access. Index is %d but array length is %d", i, len(arr.Elements))
	}
	return arr.Elements[i]
}

// evalCallExpression implements §4.4's Call resolution: arguments are
// evaluated first (left-to-right, first error aborts); the callee is then
// resolved and applied.
func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	switch callee := node.Function.(type) {
	case *ast.FunctionLiteral:
		fnObj := e.Eval(callee, env)
		if isError(fnObj) {
			return fnObj
		}
		fn, ok := fnObj.(*object.Function)
		if !ok {
			return newError("not a function: %s", fnObj.Type())
		}
		return e.applyFunction(fn, args)

	case *ast.Identifier:
		return e.callIdentifier(callee.Value, args, env)

	default:
		return newError("cannot call expression of type %T", node.Function)
	}
}

// callIdentifier resolves a call whose callee is a bare name. A binding of
// SelfRef dispatches straight to the current self-function slot. A normal
// binding is applied with the self-function slot set to it for the
// duration of the call (saved/restored), so a non-closure function that
// recurses through a name lookup failure (see below) can still find
// itself. If the name isn't bound at all, the fixed builtin table is
// tried; if that also misses, the self-function slot is tried one more
// time — this is what lets a `def` function, which captures no enclosing
// environment, call itself by name from inside its own body. Anything
// still unresolved is an unknown identifier.
func (e *Evaluator) callIdentifier(name string, args []object.Object, env *environment.Environment) object.Object {
	if val, ok := env.Get(name); ok {
		if _, isSelf := val.(*object.SelfRef); isSelf {
			if e.selfFn == nil {
				return newError("Unknown identifier: %s", name)
			}
			return e.invoke(e.selfFn, args)
		}

		fn, ok := val.(*object.Function)
		if !ok {
			if b, ok := val.(*object.Builtin); ok {
				return b.Fn(args...)
			}
			return newError("not a function: %s", val.Type())
		}

		previous := e.selfFn
		e.selfFn = fn
		result := e.applyFunction(fn, args)
		e.selfFn = previous
		return result
	}

	if builtin, ok := e.builtins[name]; ok {
		return builtin.Fn(args...)
	}

	if e.selfFn != nil {
		return e.invoke(e.selfFn, args)
	}

	return newError("Unknown identifier: %s", name)
}

// invoke applies an already-resolved callable object, whether it is a
// user-defined Function or a Builtin.
func (e *Evaluator) invoke(callable object.Object, args []object.Object) object.Object {
	switch fn := callable.(type) {
	case *object.Function:
		return e.applyFunction(fn, args)
	case *object.Builtin:
		return fn.Fn(args...)
	default:
		return newError("not a function: %s", callable.Type())
	}
}

// applyFunction checks arity, binds parameters in a fresh frame enclosing
// the function's captured environment (or a bare root frame for a
// non-closure `def` function, whose Env is nil), and evaluates the body as
// a statement list with return-unwrapping.
func (e *Evaluator) applyFunction(fn *object.Function, args []object.Object) object.Object {
	if len(args) != len(fn.Parameters) {
		return newError("Mismatched number of parameters: %d != %d", len(args), len(fn.Parameters))
	}

	var outer *environment.Environment
	if fn.Env != nil {
		outer = fn.Env.(*environment.Environment)
	} else {
		outer = environment.New()
	}

	callEnv := environment.NewEnclosed(outer)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Value, args[i])
	}

	result := e.evalStatements(fn.Body.Statements, callEnv)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}
