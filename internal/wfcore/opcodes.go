package wfcore

// Opcode is a single bytecode instruction tag. Values below are this
// module's own numbering: nothing pins these bytes to a particular
// external encoding, only their names and behavior matter.
type Opcode byte

// Structural opcodes: dispatched explicitly by the shift-reduce engine
//, never through the signature table.
const (
	OpNop Opcode = iota
	OpBlock
	OpLoop
	OpIf
	OpIfThen
	OpBreak
	OpContinue
	OpSwitch
	OpSwitchNf
	OpReturn
	OpTernary
	OpComma
	OpGetLocal
	OpSetLocal
	OpLoadGlobal
	OpStoreGlobal
	OpCallFunction
	OpCallIndirect

	OpI32Const8
	OpI32Const
	OpI64Const
	OpF32Const
	OpF64Const

	OpI32LoadMemL
	OpI32LoadMemH
	OpI64LoadMemL
	OpI64LoadMemH
	OpF32LoadMemL
	OpF32LoadMemH
	OpF64LoadMemL
	OpF64LoadMemH

	OpI32StoreMemL
	OpI32StoreMemH
	OpI64StoreMemL
	OpI64StoreMemH
	OpF32StoreMemL
	OpF32StoreMemH
	OpF64StoreMemL
	OpF64StoreMemH

	opStructuralEnd // marks the boundary; signature-driven opcodes start after it
)

// Signature-driven simple-expression opcodes:
// fixed arity, fixed param/return types, dispatched generically by the
// engine's signature lookup rather than a bespoke reduce case.
const (
	OpI32Add Opcode = iota + opStructuralEnd + 1
	OpI32Sub
	OpI32Mul
	OpI32Eq
	OpI32Lt
	OpI32Eqz

	OpI64Add
	OpI64Sub
	OpI64Eq

	OpF32Add
	OpF32Sub
	OpF32Eq

	OpF64Add
	OpF64Sub
	OpF64Eq
)

var opcodeNames = map[Opcode]string{
	OpNop:          "nop",
	OpBlock:        "block",
	OpLoop:         "loop",
	OpIf:           "if",
	OpIfThen:       "if-then",
	OpBreak:        "break",
	OpContinue:     "continue",
	OpSwitch:       "switch",
	OpSwitchNf:     "switch-nf",
	OpReturn:       "return",
	OpTernary:      "ternary",
	OpComma:        "comma",
	OpGetLocal:     "get-local",
	OpSetLocal:     "set-local",
	OpLoadGlobal:   "load-global",
	OpStoreGlobal:  "store-global",
	OpCallFunction: "call-function",
	OpCallIndirect: "call-indirect",

	OpI32Const8: "i32.const8",
	OpI32Const:  "i32.const",
	OpI64Const:  "i64.const",
	OpF32Const:  "f32.const",
	OpF64Const:  "f64.const",

	OpI32LoadMemL: "i32.load_mem_l",
	OpI32LoadMemH: "i32.load_mem_h",
	OpI64LoadMemL: "i64.load_mem_l",
	OpI64LoadMemH: "i64.load_mem_h",
	OpF32LoadMemL: "f32.load_mem_l",
	OpF32LoadMemH: "f32.load_mem_h",
	OpF64LoadMemL: "f64.load_mem_l",
	OpF64LoadMemH: "f64.load_mem_h",

	OpI32StoreMemL: "i32.store_mem_l",
	OpI32StoreMemH: "i32.store_mem_h",
	OpI64StoreMemL: "i64.store_mem_l",
	OpI64StoreMemH: "i64.store_mem_h",
	OpF32StoreMemL: "f32.store_mem_l",
	OpF32StoreMemH: "f32.store_mem_h",
	OpF64StoreMemL: "f64.store_mem_l",
	OpF64StoreMemH: "f64.store_mem_h",

	OpI32Add: "i32.add",
	OpI32Sub: "i32.sub",
	OpI32Mul: "i32.mul",
	OpI32Eq:  "i32.eq",
	OpI32Lt:  "i32.lt",
	OpI32Eqz: "i32.eqz",

	OpI64Add: "i64.add",
	OpI64Sub: "i64.sub",
	OpI64Eq:  "i64.eq",

	OpF32Add: "f32.add",
	OpF32Sub: "f32.sub",
	OpF32Eq:  "f32.eq",

	OpF64Add: "f64.add",
	OpF64Sub: "f64.sub",
	OpF64Eq:  "f64.eq",
}

// OpcodeName returns the mnemonic used in diagnostic messages, or a
// placeholder for an opcode this module does not know about.
func OpcodeName(op Opcode) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "unknown"
}

// signatureTable holds the fixed (params) -> return signature for every
// signature-driven opcode, following a flat default-invalid table pattern
// generalized to a map since this opcode space is not a dense byte range.
var signatureTable = map[Opcode]Signature{
	OpI32Add: {Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
	OpI32Sub: {Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
	OpI32Mul: {Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
	OpI32Eq:  {Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
	OpI32Lt:  {Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
	OpI32Eqz: {Params: []ValueType{I32}, Returns: []ValueType{I32}},

	OpI64Add: {Params: []ValueType{I64, I64}, Returns: []ValueType{I64}},
	OpI64Sub: {Params: []ValueType{I64, I64}, Returns: []ValueType{I64}},
	OpI64Eq:  {Params: []ValueType{I64, I64}, Returns: []ValueType{I32}},

	OpF32Add: {Params: []ValueType{F32, F32}, Returns: []ValueType{F32}},
	OpF32Sub: {Params: []ValueType{F32, F32}, Returns: []ValueType{F32}},
	OpF32Eq:  {Params: []ValueType{F32, F32}, Returns: []ValueType{I32}},

	OpF64Add: {Params: []ValueType{F64, F64}, Returns: []ValueType{F64}},
	OpF64Sub: {Params: []ValueType{F64, F64}, Returns: []ValueType{F64}},
	OpF64Eq:  {Params: []ValueType{F64, F64}, Returns: []ValueType{I32}},
}

func (s Signature) retType() ValueType {
	if len(s.Returns) == 0 {
		return Stmt
	}
	return s.Returns[0]
}
