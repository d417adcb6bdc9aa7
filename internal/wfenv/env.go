// Package wfenv is a concrete, in-memory wfcore.FunctionEnvironment: the
// module-level signature, global, and function tables a decoded function
// body is checked against, plus a YAML loader for describing them outside
// of Go source.
package wfenv

import (
	"fmt"

	"github.com/wfgraph/wfgraph/internal/wfcore"
)

// Env is one function's view of its enclosing module: its own signature,
// its local slots (params first, then declared locals), and read-only
// references to the module's globals, function table, and indirect-call
// table.
type Env struct {
	sig     wfcore.Signature
	locals  []wfcore.ValueType
	globals []wfcore.ValueType
	funcs   []wfcore.Signature
	tables  []wfcore.Signature
}

// New builds an Env for one function: sig is its own signature, extraLocals
// are the locals declared beyond its parameters, and globals/funcs/tables
// describe the rest of the module.
func New(sig wfcore.Signature, extraLocals []wfcore.ValueType, globals []wfcore.ValueType, funcs, tables []wfcore.Signature) *Env {
	locals := make([]wfcore.ValueType, 0, len(sig.Params)+len(extraLocals))
	locals = append(locals, sig.Params...)
	locals = append(locals, extraLocals...)
	return &Env{sig: sig, locals: locals, globals: globals, funcs: funcs, tables: tables}
}

func (e *Env) Signature() wfcore.Signature { return e.sig }

func (e *Env) TotalLocals() int { return len(e.locals) }

func (e *Env) IsValidLocal(i int) bool { return i >= 0 && i < len(e.locals) }

func (e *Env) GetLocalType(i int) wfcore.ValueType { return e.locals[i] }

func (e *Env) IsValidGlobal(i int) bool { return i >= 0 && i < len(e.globals) }

func (e *Env) GetGlobalType(i int) wfcore.ValueType { return e.globals[i] }

func (e *Env) IsValidFunction(i int) bool { return i >= 0 && i < len(e.funcs) }

func (e *Env) GetFunctionSignature(i int) wfcore.Signature { return e.funcs[i] }

func (e *Env) IsValidFunctionTable(i int) bool { return i >= 0 && i < len(e.tables) }

func (e *Env) GetFunctionTableSignature(i int) wfcore.Signature { return e.tables[i] }

var _ wfcore.FunctionEnvironment = (*Env)(nil)

func (e *Env) String() string {
	return fmt.Sprintf("Env{locals=%d globals=%d funcs=%d tables=%d}",
		len(e.locals), len(e.globals), len(e.funcs), len(e.tables))
}
