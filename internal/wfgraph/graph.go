// Package wfgraph is a concrete, tagged-node sea-of-nodes graph implementing
// wfcore.Builder: every value, branch, merge, and phi the decoder asks for
// becomes one Node with an explicit input list, so the resulting Graph is a
// complete program representation a later optimization or codegen pass can
// walk without going back to the bytecode.
package wfgraph

import (
	"fmt"

	"github.com/wfgraph/wfgraph/internal/wfcore"
)

// Kind tags what a Node represents.
type Kind uint8

const (
	KindStart Kind = iota
	KindParam
	KindConst
	KindUnop
	KindBinop
	KindLoadMem
	KindStoreMem
	KindLoadGlobal
	KindStoreGlobal
	KindCall
	KindCallIndirect
	KindBranch
	KindIfTrue
	KindIfFalse
	KindMerge
	KindLoop
	KindPhi
	KindEffectPhi
	KindTerminate
	KindReturn
	KindReturnVoid
	KindError
)

func (k Kind) String() string {
	names := [...]string{
		"Start", "Param", "Const", "Unop", "Binop", "LoadMem", "StoreMem",
		"LoadGlobal", "StoreGlobal", "Call", "CallIndirect", "Branch",
		"IfTrue", "IfFalse", "Merge", "Loop", "Phi", "EffectPhi",
		"Terminate", "Return", "ReturnVoid", "Error",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Node is one vertex of the sea of nodes. Const carries its literal value
// pre-formatted as a string so the graph stays usable without importing the
// four distinct Go numeric types into every caller.
type Node struct {
	ID      int
	Kind    Kind
	Opcode  wfcore.Opcode
	Type    wfcore.ValueType
	MemType wfcore.MemType
	Const   string
	Index   int
	Inputs  []*Node
}

func (n *Node) String() string {
	return fmt.Sprintf("n%d:%s", n.ID, n.Kind)
}

// Graph accumulates every Node built during one Decode call. It has no
// notion of "the" function result; the driver's Result.Trees plus the
// Return/ReturnVoid nodes recorded here are what a caller walks afterward.
type Graph struct {
	nodes     []*Node
	StartNode *Node
	Returns   []*Node
}

// New returns an empty Graph ready to be passed to wfcore.Decode.
func New() *Graph {
	return &Graph{}
}

// Nodes returns every node created so far, in creation order.
func (g *Graph) Nodes() []*Node { return g.nodes }

func (g *Graph) alloc(kind Kind, inputs ...*Node) *Node {
	n := &Node{ID: len(g.nodes), Kind: kind, Inputs: inputs}
	g.nodes = append(g.nodes, n)
	return n
}

func asNode(h wfcore.NodeHandle) *Node {
	if h == nil {
		return nil
	}
	return h.(*Node)
}

func asNodes(hs []wfcore.NodeHandle) []*Node {
	out := make([]*Node, len(hs))
	for i, h := range hs {
		out[i] = asNode(h)
	}
	return out
}

var (
	_ wfcore.Builder = (*Graph)(nil)
	_ wfcore.Builder = NullBuilder{}
)
