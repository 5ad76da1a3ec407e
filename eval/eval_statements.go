/*
File    : monkey/eval/eval_statements.go
*/
package eval

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
)

// evalProgram evaluates the top-level statement list. The program is
// transparent with respect to scoping (it runs directly in the env passed
// in, typically the root environment) and unwraps any ReturnValue that
// reaches it, since there is no enclosing function boundary above it.
func (e *Evaluator) evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	result := e.evalStatements(program.Statements, env)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}

// evalBlockStatement evaluates a brace-delimited block in a fresh child
// scope (consequence/alternative of an `if`). Unlike evalProgram, a
// ReturnValue produced here stays wrapped: it must keep propagating
// outward until it reaches the function boundary that can unwrap it. This
// is what makes `return` inside a nested `if` still exit the enclosing
// function rather than just the `if`.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	inner := environment.NewEnclosed(env)
	return e.evalStatements(block.Statements, inner)
}

// evalStatements evaluates stmts in order, returning the value of the
// last statement. If any statement evaluates to a ReturnValue or an Error,
// evaluation stops immediately and that value is returned, wrapped as-is —
// callers decide whether to unwrap. An empty list yields the defined
// sentinel value rather than nil; it is never produced for a non-empty
// program.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *environment.Environment) object.Object {
	if len(stmts) == 0 {
		return &object.Integer{Value: emptyBlockSentinel}
	}

	var result object.Object
	for _, stmt := range stmts {
		result = e.Eval(stmt, env)

		if result != nil {
			switch result.Type() {
			case object.ReturnValueObj, object.ErrorObj:
				return result
			}
		}
	}
	return result
}

// evalLetStatement binds Name to the evaluated Value in the current
// frame. For `let rec`, Name is first bound to the SelfRef sentinel so the
// initializer can reference it without capturing its own not-yet-computed
// value; once evaluation completes, the binding is replaced with the real
// result.
func (e *Evaluator) evalLetStatement(node *ast.LetStatement, env *environment.Environment) object.Object {
	if node.Rec {
		env.Set(node.Name.Value, &object.SelfRef{})
	}

	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}

	env.Set(node.Name.Value, val)
	return NULL
}

// evalDefStatement registers a named, non-closure function: identical to
// `let name = fun(params) body` except the resulting Function carries a
// nil Env, so it must be resolved by name at each call (see
// eval_expressions.go's call resolution) rather than via a captured scope.
// This is what lets a `def` recurse without `rec`.
func (e *Evaluator) evalDefStatement(node *ast.DefStatement, env *environment.Environment) object.Object {
	fn := &object.Function{
		Parameters: node.Parameters,
		Body:       node.Body,
		Env:        nil,
	}
	env.Set(node.Name.Value, fn)
	return NULL
}
