package wfgraph

import (
	"testing"

	"github.com/wfgraph/wfgraph/internal/wfcore"
)

type testEnv struct {
	sig    wfcore.Signature
	locals []wfcore.ValueType
}

func (e *testEnv) Signature() wfcore.Signature { return e.sig }
func (e *testEnv) TotalLocals() int            { return len(e.locals) }
func (e *testEnv) IsValidLocal(i int) bool     { return i >= 0 && i < len(e.locals) }
func (e *testEnv) GetLocalType(i int) wfcore.ValueType { return e.locals[i] }
func (e *testEnv) IsValidGlobal(i int) bool            { return false }
func (e *testEnv) GetGlobalType(i int) wfcore.ValueType { return wfcore.Stmt }
func (e *testEnv) IsValidFunction(i int) bool                   { return false }
func (e *testEnv) GetFunctionSignature(i int) wfcore.Signature { return wfcore.Signature{} }
func (e *testEnv) IsValidFunctionTable(i int) bool                   { return false }
func (e *testEnv) GetFunctionTableSignature(i int) wfcore.Signature { return wfcore.Signature{} }

func TestGraphBuildsAddition(t *testing.T) {
	code := []byte{byte(wfcore.OpI32Add), byte(wfcore.OpGetLocal), 0, byte(wfcore.OpGetLocal), 1}
	fn := &testEnv{
		sig:    wfcore.Signature{Params: []wfcore.ValueType{wfcore.I32, wfcore.I32}, Returns: []wfcore.ValueType{wfcore.I32}},
		locals: []wfcore.ValueType{wfcore.I32, wfcore.I32},
	}
	g := New()

	res := wfcore.Decode(code, fn, g, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	var binops int
	for _, n := range g.Nodes() {
		if n.Kind == KindBinop {
			binops++
		}
	}
	if binops != 1 {
		t.Fatalf("expected one Binop node, got %d", binops)
	}
	if len(g.Returns) != 1 {
		t.Fatalf("expected one return node, got %d", len(g.Returns))
	}
}

func TestNullBuilderVerifiesWithoutGraph(t *testing.T) {
	code := []byte{byte(wfcore.OpI32Add), byte(wfcore.OpGetLocal), 0, byte(wfcore.OpGetLocal), 1}
	fn := &testEnv{
		sig:    wfcore.Signature{Params: []wfcore.ValueType{wfcore.I32, wfcore.I32}, Returns: []wfcore.ValueType{wfcore.I32}},
		locals: []wfcore.ValueType{wfcore.I32, wfcore.I32},
	}

	res := wfcore.Decode(code, fn, NullBuilder{}, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
}

func TestGraphCatchesTypeMismatch(t *testing.T) {
	code := []byte{byte(wfcore.OpI32Add), byte(wfcore.OpGetLocal), 0, byte(wfcore.OpI32Const8), 1}
	fn := &testEnv{
		sig:    wfcore.Signature{Params: []wfcore.ValueType{wfcore.F64}},
		locals: []wfcore.ValueType{wfcore.F64},
	}
	g := New()

	res := wfcore.Decode(code, fn, g, nil)

	if res.OK {
		t.Fatalf("expected type mismatch to be caught")
	}
}
