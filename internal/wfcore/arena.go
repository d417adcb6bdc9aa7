package wfcore

// Tree is one node of the decoded expression tree: a completed leaf or an
// in-progress-turned-complete production. Once Count children have been
// attached (shifting is monotone left to right), the tree is complete and
// Node has been populated by the corresponding reduce step, or intentionally
// left nil for a purely-statement node.
type Tree struct {
	Type     ValueType
	Count    int
	PC       int
	Node     NodeHandle
	Children []*Tree
}

// arena bump-allocates Trees in fixed-size chunks for the lifetime of a
// single decode call. Each chunk is sized once and never reallocated, so a
// *Tree handed out by the arena stays valid for the chunk's lifetime; the
// whole arena (and every Tree it produced) is reclaimed together when the
// caller drops its reference to the decode Result, mirroring the "single
// lifetime tied to the decode call" invariant.
type arena struct {
	chunks [][]Tree
}

const arenaChunkSize = 64

func newArena() *arena {
	return &arena{}
}

func (a *arena) newTree(typ ValueType, count, pc int) *Tree {
	if len(a.chunks) == 0 {
		a.chunks = append(a.chunks, make([]Tree, 0, arenaChunkSize))
	}
	last := len(a.chunks) - 1
	if len(a.chunks[last]) == cap(a.chunks[last]) {
		a.chunks = append(a.chunks, make([]Tree, 0, arenaChunkSize))
		last++
	}
	a.chunks[last] = append(a.chunks[last], Tree{Type: typ, Count: count, PC: pc})
	t := &a.chunks[last][len(a.chunks[last])-1]
	if count > 0 {
		t.Children = make([]*Tree, count)
	}
	return t
}
