package wfgraph

import (
	"fmt"

	"github.com/wfgraph/wfgraph/internal/wfcore"
)

// Start creates the graph's single start node, which every Param hangs off
// of. The local count n is not recorded.
func (g *Graph) Start(n int) {
	g.StartNode = g.alloc(KindStart)
}

func (g *Graph) Param(i int, typ wfcore.ValueType) wfcore.NodeHandle {
	n := g.alloc(KindParam, g.StartNode)
	n.Type = typ
	n.Index = i
	return n
}

func (g *Graph) constNode(typ wfcore.ValueType, lit string) wfcore.NodeHandle {
	n := g.alloc(KindConst)
	n.Type = typ
	n.Const = lit
	return n
}

func (g *Graph) Int32Constant(v int32) wfcore.NodeHandle {
	return g.constNode(wfcore.I32, fmt.Sprintf("%d", v))
}

func (g *Graph) Int64Constant(v int64) wfcore.NodeHandle {
	return g.constNode(wfcore.I64, fmt.Sprintf("%d", v))
}

func (g *Graph) Float32Constant(v float32) wfcore.NodeHandle {
	return g.constNode(wfcore.F32, fmt.Sprintf("%g", v))
}

func (g *Graph) Float64Constant(v float64) wfcore.NodeHandle {
	return g.constNode(wfcore.F64, fmt.Sprintf("%g", v))
}

func (g *Graph) Unop(op wfcore.Opcode, a wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindUnop, asNode(a))
	n.Opcode = op
	return n
}

func (g *Graph) Binop(op wfcore.Opcode, a, b wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindBinop, asNode(a), asNode(b))
	n.Opcode = op
	return n
}

func (g *Graph) LoadMem(mt wfcore.MemType, addr wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindLoadMem, asNode(addr))
	n.MemType = mt
	return n
}

func (g *Graph) StoreMem(mt wfcore.MemType, addr, val wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindStoreMem, asNode(addr), asNode(val))
	n.MemType = mt
	return n
}

func (g *Graph) LoadGlobal(i int) wfcore.NodeHandle {
	n := g.alloc(KindLoadGlobal)
	n.Index = i
	return n
}

func (g *Graph) StoreGlobal(i int, val wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindStoreGlobal, asNode(val))
	n.Index = i
	return n
}

func (g *Graph) CallDirect(i int, argv []wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindCall, asNodes(argv)...)
	n.Index = i
	return n
}

func (g *Graph) CallIndirect(i int, argv []wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindCallIndirect, asNodes(argv)...)
	n.Index = i
	return n
}

func (g *Graph) Branch(cond wfcore.NodeHandle) (wfcore.NodeHandle, wfcore.NodeHandle) {
	b := g.alloc(KindBranch, asNode(cond))
	return g.alloc(KindIfTrue, b), g.alloc(KindIfFalse, b)
}

func (g *Graph) Merge(ctrls []wfcore.NodeHandle) wfcore.NodeHandle {
	return g.alloc(KindMerge, asNodes(ctrls)...)
}

func (g *Graph) AppendToMerge(merge, ctrl wfcore.NodeHandle) {
	m := asNode(merge)
	m.Inputs = append(m.Inputs, asNode(ctrl))
}

func (g *Graph) EffectPhi(effects []wfcore.NodeHandle, merge wfcore.NodeHandle) wfcore.NodeHandle {
	inputs := append(asNodes(effects), asNode(merge))
	return g.alloc(KindEffectPhi, inputs...)
}

func (g *Graph) Phi(typ wfcore.ValueType, values []wfcore.NodeHandle, merge wfcore.NodeHandle) wfcore.NodeHandle {
	inputs := append(asNodes(values), asNode(merge))
	n := g.alloc(KindPhi, inputs...)
	n.Type = typ
	return n
}

// IsPhiWithMerge reports whether node is a Phi or EffectPhi whose trailing
// input (its merge) is exactly merge. Appending to such a phi is how a
// loop backedge or an extended switch-nf merge widens it in place.
func (g *Graph) IsPhiWithMerge(node, merge wfcore.NodeHandle) bool {
	n := asNode(node)
	if n == nil || (n.Kind != KindPhi && n.Kind != KindEffectPhi) {
		return false
	}
	last := n.Inputs[len(n.Inputs)-1]
	return last == asNode(merge)
}

func (g *Graph) AppendToPhi(merge, phi, val wfcore.NodeHandle) {
	p := asNode(phi)
	last := len(p.Inputs) - 1
	p.Inputs = append(p.Inputs[:last], asNode(val), p.Inputs[last])
}

func (g *Graph) InputCount(merge wfcore.NodeHandle) int {
	return len(asNode(merge).Inputs)
}

func (g *Graph) Loop(ctrl wfcore.NodeHandle) wfcore.NodeHandle {
	return g.alloc(KindLoop, asNode(ctrl))
}

func (g *Graph) Terminate(effect, ctrl wfcore.NodeHandle) wfcore.NodeHandle {
	return g.alloc(KindTerminate, asNode(effect), asNode(ctrl))
}

func (g *Graph) Return(argv []wfcore.NodeHandle) wfcore.NodeHandle {
	n := g.alloc(KindReturn, asNodes(argv)...)
	g.Returns = append(g.Returns, n)
	return n
}

func (g *Graph) ReturnVoid() wfcore.NodeHandle {
	n := g.alloc(KindReturnVoid)
	g.Returns = append(g.Returns, n)
	return n
}

func (g *Graph) Buffer(n int) []wfcore.NodeHandle {
	return make([]wfcore.NodeHandle, n)
}

var errorSingleton = &Node{ID: -1, Kind: KindError}

func (g *Graph) Error() wfcore.NodeHandle {
	return errorSingleton
}
