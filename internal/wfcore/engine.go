package wfcore

// decoder holds the full state of one decode call: the byte cursor, the
// control-flow frame stacks, and the collaborators it drives. Its lifetime
// is exactly one call to Decode (driver.go).
//
// A stack-based interpreter would need an explicit production stack to
// avoid recursing across arbitrarily deep bytecode. Go's call stack plays
// that role here: decodeNode shifts a node's children by recursing into
// itself and reduces on the way back out, so the two phases that are
// separate functions in the source are one function in this module. The
// block/if frame stacks remain explicit because they outlive any single
// decodeNode call: a break deep inside a loop body must still find the
// loop's break target.
type decoder struct {
	code    []byte
	pc      int
	fn      FunctionEnvironment
	builder Builder
	log     Logger
	arena   *arena

	blockStack []*blockFrame
	ifStack    []*ifFrame

	env  *Env
	diag *Diagnostic

	trees []*Tree
}

func newDecoder(code []byte, fn FunctionEnvironment, b Builder, log Logger) *decoder {
	return &decoder{code: code, fn: fn, builder: b, log: log, arena: newArena()}
}

func (d *decoder) failed() bool { return d.diag != nil }

// fail latches the first diagnostic; subsequent calls are no-ops so the
// decoder never overwrites the original cause with a cascade error.
func (d *decoder) fail(code error, pt int, format string, args ...any) {
	if d.diag != nil {
		return
	}
	d.diag = diagf(code, d.pc, pt, format, args...)
}

func (d *decoder) opcodeAt(pc int) (Opcode, bool) {
	if pc >= len(d.code) {
		return 0, false
	}
	return Opcode(d.code[pc]), true
}

// run decodes top-level statements until the code is exhausted or a
// diagnostic latches, then synthesizes the implicit final return.
func (d *decoder) run() {
	for d.pc < len(d.code) && !d.failed() {
		start := d.pc
		t := d.decodeNode(nil)
		if d.failed() {
			return
		}
		if d.pc <= start {
			d.fail(errBeyondEndOfCode, start, "decode made no progress")
			return
		}
		d.trees = append(d.trees, t)
	}
	if !d.failed() {
		d.finishImplicitReturn()
	}
}

// decodeNode shifts one node (reading its opcode and all of its children,
// recursively) and reduces it in place, returning the completed Tree. If
// expect is non-nil the node's type is checked against it.
//
// Every shift passes through here, nested children included, so this is
// also where the environment's reachability is enforced: a node decoded
// while the environment has ended or never been reached latches
// unreachable-code immediately, rather than building a Tree nobody can
// execute.
func (d *decoder) decodeNode(expect *ValueType) *Tree {
	if !d.env.reachable() {
		d.fail(errUnreachableCode, -1, "unreachable code")
		return nil
	}
	pc := d.pc
	op, ok := d.opcodeAt(pc)
	if !ok {
		d.fail(errBeyondEndOfCode, -1, "expected an opcode")
		return nil
	}

	var t *Tree
	switch {
	case op < opStructuralEnd:
		t = d.decodeStructural(op, pc)
	default:
		t = d.decodeSignatureDriven(op, pc)
	}
	if d.failed() || t == nil {
		return nil
	}
	if expect != nil && t.Type != *expect {
		d.fail(errTypeCheck, pc, "expected %s, got %s", expect.String(), t.Type.String())
		return nil
	}
	return t
}

func (d *decoder) decodeSignatureDriven(op Opcode, pc int) *Tree {
	sig, ok := signatureTable[op]
	if !ok {
		d.fail(errInvalidOpcode, pc, "unrecognized opcode %d", op)
		return nil
	}
	d.pc = pc + 1

	children := make([]*Tree, len(sig.Params))
	for i, pt := range sig.Params {
		pt := pt
		children[i] = d.decodeNode(&pt)
		if d.failed() {
			return nil
		}
	}

	typ := sig.retType()
	tree := d.arena.newTree(typ, len(children), pc)
	tree.Children = children

	args := make([]NodeHandle, len(children))
	for i, c := range children {
		args[i] = c.Node
	}
	switch len(args) {
	case 1:
		tree.Node = d.builder.Unop(op, args[0])
	case 2:
		tree.Node = d.builder.Binop(op, args[0], args[1])
	default:
		d.fail(errInvalidOpcode, pc, "signature-driven opcode %s has unsupported arity %d", OpcodeName(op), len(args))
		return nil
	}
	return tree
}

func (d *decoder) leaf(typ ValueType, pc int, node NodeHandle) *Tree {
	t := d.arena.newTree(typ, 0, pc)
	t.Node = node
	return t
}
