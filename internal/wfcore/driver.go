package wfcore

// Result is what a single Decode call produces: either a complete forest of
// top-level statement trees with Trees populated and Err nil, or the single
// latched Diagnostic that stopped the pass.
type Result struct {
	Trees  []*Tree
	OK     bool
	Err    *Diagnostic
	Digest [32]byte
}

// Decode runs the coupled verifier/lowering pass over one function body. b
// may be a verify-only Builder that returns stable sentinel
// handles and performs no real IR construction; log may be nil, which
// disables the two informational log lines this function emits.
func Decode(code []byte, fn FunctionEnvironment, b Builder, log Logger) Result {
	d := newDecoder(code, fn, b, log)
	d.logInfo("decoding function body", "bytes", len(code))

	sig := fn.Signature()
	b.Start(fn.TotalLocals())
	locals := make([]NodeHandle, fn.TotalLocals())
	for i := range locals {
		if i < len(sig.Params) {
			locals[i] = b.Param(i, sig.Params[i])
			continue
		}
		locals[i] = zeroConstant(b, fn.GetLocalType(i))
	}
	d.env = &Env{State: StateReached, Locals: locals}

	d.run()

	res := Result{Digest: Digest(code)}
	if d.failed() {
		res.Err = d.diag
		d.logWarn("decode failed", "error", d.diag.Error(), "pc", d.diag.PC)
		return res
	}
	res.OK = true
	res.Trees = d.trees
	d.logInfo("decode succeeded", "statements", len(d.trees))
	return res
}

func zeroConstant(b Builder, typ ValueType) NodeHandle {
	switch typ {
	case I32:
		return b.Int32Constant(0)
	case I64:
		return b.Int64Constant(0)
	case F32:
		return b.Float32Constant(0)
	case F64:
		return b.Float64Constant(0)
	default:
		return b.Error()
	}
}

// finishImplicitReturn synthesizes the function's final return when control
// falls off the end of the body instead of hitting an explicit `return`.
// With N declared return values, the last N top-level statements supply
// them: the very last statement maps to Returns[0], the one before it to
// Returns[1], and so on, each peeled through any enclosing `block` to its
// last child first, since a block's own value is its last statement's.
func (d *decoder) finishImplicitReturn() {
	if !d.env.reachable() {
		return
	}
	sig := d.fn.Signature()
	if len(sig.Returns) == 0 {
		d.builder.ReturnVoid()
		d.kill(d.env)
		return
	}
	retCount := len(sig.Returns)
	if len(d.trees) < retCount {
		d.fail(errImplicitReturnShortage, d.pc, "function must return %d value(s) but has only %d statement(s)", retCount, len(d.trees))
		return
	}
	values := make([]NodeHandle, retCount)
	for i := 0; i < retCount; i++ {
		tree := d.peelBlock(d.trees[len(d.trees)-1-i])
		want := sig.Returns[i]
		if tree.Type != want {
			d.fail(errImplicitReturnType, tree.PC, "implicit return value %d expects %s, found %s", i, want, tree.Type)
			return
		}
		values[i] = tree.Node
	}
	d.builder.Return(values)
	d.kill(d.env)
}

// peelBlock walks down a `block` tree's last child, repeatedly, to find the
// value it actually carries. A Tree has no opcode field of its own; the
// opcode is re-read from the byte it was decoded at.
func (d *decoder) peelBlock(t *Tree) *Tree {
	for len(t.Children) > 0 {
		op, ok := d.opcodeAt(t.PC)
		if !ok || op != OpBlock {
			break
		}
		t = t.Children[len(t.Children)-1]
	}
	return t
}

func (d *decoder) logInfo(msg string, args ...any) {
	if d.log != nil {
		d.log.Info(msg, args...)
	}
}

func (d *decoder) logWarn(msg string, args ...any) {
	if d.log != nil {
		d.log.Warn(msg, args...)
	}
}
