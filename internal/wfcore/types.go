// Package wfcore implements the coupled verifier and sea-of-nodes SSA
// lowering pass for one function body of a stack-neutral, prefix-encoded
// bytecode. It both checks that the body is well-formed and well-typed and,
// when given a live Builder, emits the IR for it; the two jobs share one
// pass because a type error can only be detected by walking the same tree
// the IR builder needs to walk.
package wfcore

// ValueType is the type carried by a decoded expression tree. Stmt is the
// "no value" marker used for effectful statements and empty blocks.
type ValueType uint8

const (
	Stmt ValueType = iota
	I32
	I64
	F32
	F64
)

func (t ValueType) String() string {
	switch t {
	case Stmt:
		return "stmt"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "invalid"
	}
}

// MemType is the effective width/signedness/kind of a memory access,
// decoded from the single-byte memory-access operand of a load or store.
type MemType uint8

const (
	MemI8 MemType = iota
	MemU8
	MemI16
	MemU16
	MemI32
	MemU32
	MemI64
	MemU64
	MemF32
	MemF64
)

func (t MemType) String() string {
	switch t {
	case MemI8:
		return "i8"
	case MemU8:
		return "u8"
	case MemI16:
		return "i16"
	case MemU16:
		return "u16"
	case MemI32:
		return "i32"
	case MemU32:
		return "u32"
	case MemI64:
		return "i64"
	case MemU64:
		return "u64"
	case MemF32:
		return "f32"
	case MemF64:
		return "f64"
	default:
		return "invalid"
	}
}

// NodeHandle is an opaque reference to an IR node as produced by a Builder.
// The core never inspects it; it only threads handles between Builder calls.
type NodeHandle any

// Signature describes the parameter and return types of a callable: a
// function, a function-table entry, or the decoded function itself.
type Signature struct {
	Params  []ValueType
	Returns []ValueType
}
