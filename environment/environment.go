// Package environment implements Monkey's lexical scope: a mapping from
// identifier to value, plus an optional outer environment.
// Lookup walks the chain outer-ward until it hits a binding or runs out of
// scopes; insertion only ever affects the current frame.
//
// This is a trimmed version of the scope model the rest of the corpus
// tends to carry (no const-tracking, no static let-types): Monkey has no
// mutable rebinding and no static type checking, so those concerns have
// nothing to attach to here.
package environment

import "github.com/monkeylang/monkey/object"

// Environment is a single lexical scope frame.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a root environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a child environment whose outer scope is outer. This
// is called on entry to any non-top-level block, when a FunctionLiteral
// closure is evaluated, and for each function call's parameter frame; the
// root environment at program start comes from New.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), outer: outer}
}

// Outer implements object.Environment so object.Function can satisfy the
// object package's narrow Environment interface without importing this
// package back.
func (e *Environment) Outer() object.Environment {
	if e.outer == nil {
		return nil
	}
	return e.outer
}

// Get walks the scope chain outer-ward looking for name.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this frame only, never touching outer scopes.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
