package wfgraph

import "github.com/wfgraph/wfgraph/internal/wfcore"

// sentinel is the handle NullBuilder returns for every value other than a
// phi, and for every branch target. Its identity never changes, so the
// decoder's "same handle means no phi needed" checks (ternary, goTo) stay
// well-defined.
var sentinel wfcore.NodeHandle = struct{}{}

// mergeArity is NullBuilder's stand-in for a real merge or loop-header
// node: the decoder's environment-merging logic needs to track how many
// predecessors a control point has seen even when no graph is being built,
// so AppendToMerge/InputCount must still behave like a growing input list.
type mergeArity struct{ n int }

// phiArity mirrors a phi's dependency on its owning merge, enough for
// IsPhiWithMerge to recognize "this is the phi already widened to cover
// that merge" without keeping the phi's actual values around.
type phiArity struct {
	n     int
	merge *mergeArity
}

// NullBuilder implements wfcore.Builder while constructing no real graph:
// every value-producing call except Phi and EffectPhi returns sentinel,
// while merge, loop, and phi calls track just enough arity bookkeeping to keep the decoder's environment
// state machine correct. It lets a caller run the decoder purely to verify
// a function body's well-typedness.
type NullBuilder struct{}

func (NullBuilder) Start(n int)                                         {}
func (NullBuilder) Param(i int, typ wfcore.ValueType) wfcore.NodeHandle { return sentinel }

func (NullBuilder) Int32Constant(v int32) wfcore.NodeHandle     { return sentinel }
func (NullBuilder) Int64Constant(v int64) wfcore.NodeHandle     { return sentinel }
func (NullBuilder) Float32Constant(v float32) wfcore.NodeHandle { return sentinel }
func (NullBuilder) Float64Constant(v float64) wfcore.NodeHandle { return sentinel }

func (NullBuilder) Unop(op wfcore.Opcode, a wfcore.NodeHandle) wfcore.NodeHandle { return sentinel }
func (NullBuilder) Binop(op wfcore.Opcode, a, b wfcore.NodeHandle) wfcore.NodeHandle {
	return sentinel
}

func (NullBuilder) LoadMem(mt wfcore.MemType, addr wfcore.NodeHandle) wfcore.NodeHandle {
	return sentinel
}
func (NullBuilder) StoreMem(mt wfcore.MemType, addr, val wfcore.NodeHandle) wfcore.NodeHandle {
	return sentinel
}
func (NullBuilder) LoadGlobal(i int) wfcore.NodeHandle                        { return sentinel }
func (NullBuilder) StoreGlobal(i int, val wfcore.NodeHandle) wfcore.NodeHandle { return sentinel }

func (NullBuilder) CallDirect(i int, argv []wfcore.NodeHandle) wfcore.NodeHandle   { return sentinel }
func (NullBuilder) CallIndirect(i int, argv []wfcore.NodeHandle) wfcore.NodeHandle { return sentinel }

func (NullBuilder) Branch(cond wfcore.NodeHandle) (wfcore.NodeHandle, wfcore.NodeHandle) {
	return sentinel, sentinel
}

func (NullBuilder) Merge(ctrls []wfcore.NodeHandle) wfcore.NodeHandle {
	return &mergeArity{n: len(ctrls)}
}

func (NullBuilder) AppendToMerge(merge, ctrl wfcore.NodeHandle) {
	merge.(*mergeArity).n++
}

func (NullBuilder) EffectPhi(effects []wfcore.NodeHandle, merge wfcore.NodeHandle) wfcore.NodeHandle {
	return &phiArity{n: len(effects), merge: merge.(*mergeArity)}
}

func (NullBuilder) Phi(typ wfcore.ValueType, values []wfcore.NodeHandle, merge wfcore.NodeHandle) wfcore.NodeHandle {
	return &phiArity{n: len(values), merge: merge.(*mergeArity)}
}

func (NullBuilder) IsPhiWithMerge(node, merge wfcore.NodeHandle) bool {
	ph, ok := node.(*phiArity)
	if !ok {
		return false
	}
	m, ok := merge.(*mergeArity)
	return ok && ph.merge == m
}

func (NullBuilder) AppendToPhi(merge, phi, val wfcore.NodeHandle) {
	phi.(*phiArity).n++
}

func (NullBuilder) InputCount(merge wfcore.NodeHandle) int {
	return merge.(*mergeArity).n
}

func (NullBuilder) Loop(ctrl wfcore.NodeHandle) wfcore.NodeHandle {
	return &mergeArity{n: 1}
}

func (NullBuilder) Terminate(effect, ctrl wfcore.NodeHandle) wfcore.NodeHandle { return sentinel }

func (NullBuilder) Return(argv []wfcore.NodeHandle) wfcore.NodeHandle { return sentinel }
func (NullBuilder) ReturnVoid() wfcore.NodeHandle                     { return sentinel }

func (NullBuilder) Buffer(n int) []wfcore.NodeHandle { return make([]wfcore.NodeHandle, n) }
func (NullBuilder) Error() wfcore.NodeHandle         { return sentinel }
