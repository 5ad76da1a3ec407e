/*
File    : monkey/eval/builtins.go
*/
package eval

import (
	"fmt"

	"github.com/monkeylang/monkey/object"
)

// builtins returns the fixed set of host functions available in every
// evaluator: len, print, println, push, tail. The table is closed — there
// is no mechanism for user code to register new builtins — and every
// entry is name-shadowed by any identifier bound in scope.
func builtins(e *Evaluator) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"len": {Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Mismatched number of parameters: %d != 1", len(args))
			}
			switch arg := args[0].(type) {
			case *object.Array:
				return &object.Integer{Value: int64(len(arg.Elements))}
			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		}},

		"print": {Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Mismatched number of parameters: %d != 1", len(args))
			}
			fmt.Fprint(e.writer, args[0].Inspect())
			return NULL
		}},

		"println": {Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Mismatched number of parameters: %d != 1", len(args))
			}
			fmt.Fprintln(e.writer, args[0].Inspect())
			return NULL
		}},

		"push": {Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError("Mismatched number of parameters: %d != 2", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `push` must be an array, got %s", args[0].Type())
			}
			newElems := make([]object.Object, len(arr.Elements), len(arr.Elements)+1)
			copy(newElems, arr.Elements)
			newElems = append(newElems, args[1])
			return &object.Array{Elements: newElems}
		}},

		"tail": {Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Mismatched number of parameters: %d != 1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `tail` must be an array, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return newError("tail expects a non-empty list")
			}
			newElems := make([]object.Object, len(arr.Elements)-1)
			copy(newElems, arr.Elements[1:])
			return &object.Array{Elements: newElems}
		}},
	}
}
