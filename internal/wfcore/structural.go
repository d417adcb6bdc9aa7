package wfcore

// decodeStructural dispatches the opcodes the engine handles by hand rather
// than through the signature table: control flow, locals/globals, calls,
// memory access, and constants. pc is the position of the opcode byte
// itself; d.pc is advanced past it before any operand or child is read.
func (d *decoder) decodeStructural(op Opcode, pc int) *Tree {
	switch op {
	case OpNop:
		d.pc = pc + 1
		return d.arena.newTree(Stmt, 0, pc)

	case OpBlock:
		return d.decodeBlock(pc, false)
	case OpLoop:
		return d.decodeBlock(pc, true)
	case OpIfThen:
		return d.decodeIf(pc, false)
	case OpIf:
		return d.decodeIf(pc, true)
	case OpBreak:
		return d.decodeBreakContinue(pc, true)
	case OpContinue:
		return d.decodeBreakContinue(pc, false)
	case OpSwitch:
		return d.decodeSwitch(pc, true)
	case OpSwitchNf:
		return d.decodeSwitch(pc, false)
	case OpReturn:
		return d.decodeReturn(pc)
	case OpTernary:
		return d.decodeTernary(pc)
	case OpComma:
		return d.decodeComma(pc)

	case OpGetLocal:
		return d.decodeGetLocal(pc)
	case OpSetLocal:
		return d.decodeSetLocal(pc)
	case OpLoadGlobal:
		return d.decodeLoadGlobal(pc)
	case OpStoreGlobal:
		return d.decodeStoreGlobal(pc)

	case OpCallFunction:
		return d.decodeCall(pc, false)
	case OpCallIndirect:
		return d.decodeCall(pc, true)

	case OpI32Const8:
		return d.decodeConst8(pc)
	case OpI32Const:
		return d.decodeConstI32(pc)
	case OpI64Const:
		return d.decodeConstI64(pc)
	case OpF32Const:
		return d.decodeConstF32(pc)
	case OpF64Const:
		return d.decodeConstF64(pc)

	case OpI32LoadMemL, OpI32LoadMemH, OpI64LoadMemL, OpI64LoadMemH,
		OpF32LoadMemL, OpF32LoadMemH, OpF64LoadMemL, OpF64LoadMemH:
		return d.decodeLoadMem(op, pc)
	case OpI32StoreMemL, OpI32StoreMemH, OpI64StoreMemL, OpI64StoreMemH,
		OpF32StoreMemL, OpF32StoreMemH, OpF64StoreMemL, OpF64StoreMemH:
		return d.decodeStoreMem(op, pc)

	default:
		d.fail(errInvalidOpcode, pc, "unrecognized opcode %d", op)
		return nil
	}
}

func memOpType(op Opcode) ValueType {
	switch op {
	case OpI32LoadMemL, OpI32LoadMemH, OpI32StoreMemL, OpI32StoreMemH:
		return I32
	case OpI64LoadMemL, OpI64LoadMemH, OpI64StoreMemL, OpI64StoreMemH:
		return I64
	case OpF32LoadMemL, OpF32LoadMemH, OpF32StoreMemL, OpF32StoreMemH:
		return F32
	default:
		return F64
	}
}

func memOpHasOperand(op Opcode) bool {
	switch op {
	case OpI32LoadMemH, OpI64LoadMemH, OpF32LoadMemH, OpF64LoadMemH,
		OpI32StoreMemH, OpI64StoreMemH, OpF32StoreMemH, OpF64StoreMemH:
		return true
	default:
		return false
	}
}

func naturalMemType(typ ValueType) MemType {
	switch typ {
	case I32:
		return MemU32
	case I64:
		return MemU64
	case F32:
		return MemF32
	default:
		return MemF64
	}
}

func (d *decoder) readIndex(pc int) (int, bool) {
	v, length, err := readLEB128(d.code, pc)
	if err != nil {
		d.fail(err, pc, "reading index operand")
		return 0, false
	}
	d.pc = pc + length
	return int(v), true
}

func (d *decoder) decodeConst8(pc int) *Tree {
	v, ok := readInt8(d.code, pc)
	if !ok {
		d.fail(errTruncatedOperand, pc, "truncated i32.const8 immediate")
		return nil
	}
	d.pc = pc + 2
	node := d.builder.Int32Constant(int32(v))
	return d.leaf(I32, pc, node)
}

func (d *decoder) decodeConstI32(pc int) *Tree {
	v, ok := readInt32(d.code, pc)
	if !ok {
		d.fail(errTruncatedOperand, pc, "truncated i32.const immediate")
		return nil
	}
	d.pc = pc + 5
	node := d.builder.Int32Constant(v)
	return d.leaf(I32, pc, node)
}

func (d *decoder) decodeConstI64(pc int) *Tree {
	v, ok := readInt64(d.code, pc)
	if !ok {
		d.fail(errTruncatedOperand, pc, "truncated i64.const immediate")
		return nil
	}
	d.pc = pc + 9
	node := d.builder.Int64Constant(v)
	return d.leaf(I64, pc, node)
}

func (d *decoder) decodeConstF32(pc int) *Tree {
	v, ok := readFloat32(d.code, pc)
	if !ok {
		d.fail(errTruncatedOperand, pc, "truncated f32.const immediate")
		return nil
	}
	d.pc = pc + 5
	node := d.builder.Float32Constant(v)
	return d.leaf(F32, pc, node)
}

func (d *decoder) decodeConstF64(pc int) *Tree {
	v, ok := readFloat64(d.code, pc)
	if !ok {
		d.fail(errTruncatedOperand, pc, "truncated f64.const immediate")
		return nil
	}
	d.pc = pc + 9
	node := d.builder.Float64Constant(v)
	return d.leaf(F64, pc, node)
}

func (d *decoder) decodeGetLocal(pc int) *Tree {
	idx, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	if !d.fn.IsValidLocal(idx) {
		d.fail(errInvalidLocalIndex, pc, "invalid local index %d", idx)
		return nil
	}
	typ := d.fn.GetLocalType(idx)
	node := d.env.Locals[idx]
	return d.leaf(typ, pc, node)
}

func (d *decoder) decodeSetLocal(pc int) *Tree {
	idx, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	if !d.fn.IsValidLocal(idx) {
		d.fail(errInvalidLocalIndex, pc, "invalid local index %d", idx)
		return nil
	}
	typ := d.fn.GetLocalType(idx)
	val := d.decodeNode(&typ)
	if d.failed() {
		return nil
	}
	tree := d.arena.newTree(Stmt, 1, pc)
	tree.Children[0] = val
	d.env.Locals[idx] = val.Node
	return tree
}

func (d *decoder) decodeLoadGlobal(pc int) *Tree {
	idx, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	if !d.fn.IsValidGlobal(idx) {
		d.fail(errInvalidGlobalIndex, pc, "invalid global index %d", idx)
		return nil
	}
	typ := d.fn.GetGlobalType(idx)
	node := d.builder.LoadGlobal(idx)
	return d.leaf(typ, pc, node)
}

func (d *decoder) decodeStoreGlobal(pc int) *Tree {
	idx, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	if !d.fn.IsValidGlobal(idx) {
		d.fail(errInvalidGlobalIndex, pc, "invalid global index %d", idx)
		return nil
	}
	typ := d.fn.GetGlobalType(idx)
	val := d.decodeNode(&typ)
	if d.failed() {
		return nil
	}
	tree := d.arena.newTree(Stmt, 1, pc)
	tree.Children[0] = val
	d.builder.StoreGlobal(idx, val.Node)
	return tree
}

func (d *decoder) decodeLoadMem(op Opcode, pc int) *Tree {
	typ := memOpType(op)
	var mt MemType
	opPC := pc
	if memOpHasOperand(op) {
		var err error
		mt, err = readMemAccessType(d.code, pc, typ)
		if err != nil {
			d.fail(err, pc, "decoding memory access operand")
			return nil
		}
		d.pc = pc + 2
	} else {
		mt = naturalMemType(typ)
		d.pc = pc + 1
	}
	i32 := I32
	addr := d.decodeNode(&i32)
	if d.failed() {
		return nil
	}
	tree := d.arena.newTree(typ, 1, opPC)
	tree.Children[0] = addr
	tree.Node = d.builder.LoadMem(mt, addr.Node)
	return tree
}

func (d *decoder) decodeStoreMem(op Opcode, pc int) *Tree {
	typ := memOpType(op)
	var mt MemType
	opPC := pc
	if memOpHasOperand(op) {
		var err error
		mt, err = readMemAccessType(d.code, pc, typ)
		if err != nil {
			d.fail(err, pc, "decoding memory access operand")
			return nil
		}
		d.pc = pc + 2
	} else {
		mt = naturalMemType(typ)
		d.pc = pc + 1
	}
	i32 := I32
	addr := d.decodeNode(&i32)
	if d.failed() {
		return nil
	}
	val := d.decodeNode(&typ)
	if d.failed() {
		return nil
	}
	tree := d.arena.newTree(typ, 2, opPC)
	tree.Children[0], tree.Children[1] = addr, val
	tree.Node = d.builder.StoreMem(mt, addr.Node, val.Node)
	return tree
}

func (d *decoder) decodeCall(pc int, indirect bool) *Tree {
	idx, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	var sig Signature
	if indirect {
		if !d.fn.IsValidFunctionTable(idx) {
			d.fail(errInvalidFunctionTableIdx, pc, "invalid function-table index %d", idx)
			return nil
		}
		sig = d.fn.GetFunctionTableSignature(idx)
	} else {
		if !d.fn.IsValidFunction(idx) {
			d.fail(errInvalidFunctionIndex, pc, "invalid function index %d", idx)
			return nil
		}
		sig = d.fn.GetFunctionSignature(idx)
	}

	var indexNode *Tree
	if indirect {
		i32 := I32
		indexNode = d.decodeNode(&i32)
		if d.failed() {
			return nil
		}
	}

	nargs := len(sig.Params)
	childCount := nargs
	if indirect {
		childCount++
	}
	children := make([]*Tree, childCount)
	offset := 0
	if indirect {
		children[0] = indexNode
		offset = 1
	}
	for i, pt := range sig.Params {
		pt := pt
		children[offset+i] = d.decodeNode(&pt)
		if d.failed() {
			return nil
		}
	}

	typ := Stmt
	if len(sig.Returns) > 0 {
		typ = sig.Returns[0]
	}
	tree := d.arena.newTree(typ, childCount, pc)
	tree.Children = children

	argv := make([]NodeHandle, nargs)
	for i := 0; i < nargs; i++ {
		argv[i] = children[offset+i].Node
	}
	if indirect {
		tree.Node = d.builder.CallIndirect(idx, argv)
	} else {
		tree.Node = d.builder.CallDirect(idx, argv)
	}
	return tree
}
