package wfcore

// Builder is the IR-construction collaborator the core drives. It is
// intentionally minimal: the core never inspects a NodeHandle, only routes
// it between calls. A Builder backed by no underlying graph ("verify only"
// mode) must accept every call as a no-op and return non-nil handles: a
// stable sentinel for plain values, so that downstream identity comparisons
// (e.g. ternary's "same handle means no phi" rule) still behave sanely, and
// for merges, loops and phis handles that still answer InputCount and
// IsPhiWithMerge, which goTo relies on.
type Builder interface {
	Start(n int)
	Param(i int, typ ValueType) NodeHandle

	Int32Constant(v int32) NodeHandle
	Int64Constant(v int64) NodeHandle
	Float32Constant(v float32) NodeHandle
	Float64Constant(v float64) NodeHandle

	Unop(op Opcode, a NodeHandle) NodeHandle
	Binop(op Opcode, a, b NodeHandle) NodeHandle

	LoadMem(mt MemType, addr NodeHandle) NodeHandle
	StoreMem(mt MemType, addr, val NodeHandle) NodeHandle
	LoadGlobal(i int) NodeHandle
	StoreGlobal(i int, val NodeHandle) NodeHandle

	CallDirect(i int, argv []NodeHandle) NodeHandle
	CallIndirect(i int, argv []NodeHandle) NodeHandle

	// Branch creates a two-target branch on cond and returns the control
	// handles for the true and false successors.
	Branch(cond NodeHandle) (trueCtrl, falseCtrl NodeHandle)
	Merge(ctrls []NodeHandle) NodeHandle
	AppendToMerge(merge, ctrl NodeHandle)
	EffectPhi(effects []NodeHandle, merge NodeHandle) NodeHandle
	Phi(typ ValueType, values []NodeHandle, merge NodeHandle) NodeHandle
	IsPhiWithMerge(node, merge NodeHandle) bool
	AppendToPhi(merge, phi, val NodeHandle)
	InputCount(merge NodeHandle) int

	Loop(ctrl NodeHandle) NodeHandle
	Terminate(effect, ctrl NodeHandle) NodeHandle

	Return(argv []NodeHandle) NodeHandle
	ReturnVoid() NodeHandle

	Buffer(n int) []NodeHandle
	Error() NodeHandle
}

// FunctionEnvironment is the read-only module/function context the core
// queries: local and global tables, function and function-table signatures.
type FunctionEnvironment interface {
	Signature() Signature

	TotalLocals() int
	IsValidLocal(i int) bool
	GetLocalType(i int) ValueType

	IsValidGlobal(i int) bool
	GetGlobalType(i int) ValueType

	IsValidFunction(i int) bool
	GetFunctionSignature(i int) Signature

	IsValidFunctionTable(i int) bool
	GetFunctionTableSignature(i int) Signature
}

// Logger is the minimal structured-logging sink the driver uses. A nil
// Logger passed to Decode disables logging entirely (see driver.go).
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}
