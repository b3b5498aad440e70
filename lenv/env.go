// Package lenv implements the interpreter's lexical environment chain: a
// name→Value table with an optional parent, supporting lookup, local
// binding, and global definition.
package lenv

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/jfpedroza/lispy/value"
)

// Environment maps names to Values, with an optional (borrowed, non-owning)
// parent used only for lookup chaining.
type Environment struct {
	vars   map[string]value.Object
	parent *Environment
}

// NewRoot creates a fresh root environment with no parent.
func NewRoot() *Environment {
	return &Environment{vars: make(map[string]value.Object, 128)}
}

// NewChild creates a new environment whose lookups fall back to parent.
func NewChild(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Object, 8), parent: parent}
}

// Parent returns the environment's parent, or nil for the root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent rewrites the environment's parent link. Used by the call binder
// to point a callable's captured environment at the caller's environment on
// each invocation: the link is transient and may be overwritten on every
// call.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Get looks up name in the current frame, then recursively in parent frames.
// If no binding is found anywhere in the chain, it returns an unbound-symbol
// Error. Every successful lookup returns a fresh Clone of the stored value,
// per the environment's clone-out ownership rule.
func (e *Environment) Get(name string) value.Object {
	for env := e; env != nil; env = env.parent {
		if v, found := env.vars[name]; found {
			return v.Clone()
		}
	}
	return value.MakeError("Unbound symbol '" + name + "'!")
}

// Put inserts or replaces a binding in the current frame. The value is
// cloned in, so later mutation of the caller's copy does not alias the
// stored value.
func (e *Environment) Put(name string, v value.Object) {
	e.vars[name] = v.Clone()
}

// Def walks to the root environment and Puts there, implementing `def`'s
// "always bind globally" semantics.
func (e *Environment) Def(name string, v value.Object) {
	e.Root().Put(name, v)
}

// Root returns the root of this environment's parent chain.
func (e *Environment) Root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Keys returns every name bound in this frame, sorted.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeysWithPrefix returns the names in this frame that fuzzy-match prefix,
// best match first. Backs interactive completion, ranking with
// github.com/sahilm/fuzzy instead of a plain substring test so a partial
// prefix with skipped characters like "df" still surfaces "def". The
// pattern's characters must all appear in the name, in order.
func (e *Environment) KeysWithPrefix(prefix string) []string {
	if prefix == "" {
		return e.Keys()
	}
	candidates := e.Keys()
	matches := fuzzy.Find(prefix, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = candidates[m.Index]
	}
	return out
}

// Clone returns a new environment with every binding in this frame cloned
// in, sharing the same parent pointer. Used when a user-defined callable
// builds its captured environment from the binder.
func (e *Environment) Clone() *Environment {
	cp := &Environment{vars: make(map[string]value.Object, len(e.vars)), parent: e.parent}
	for k, v := range e.vars {
		cp.vars[k] = v.Clone()
	}
	return cp
}

// Bindings returns every (name, value) pair bound in this frame, for use by
// introspection builtins like `.printenv`.
func (e *Environment) Bindings() map[string]value.Object {
	out := make(map[string]value.Object, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
