package wfcore

// EnvState is the reachability state of an SSA Environment.
type EnvState uint8

const (
	// StateControlEnd: terminated by return/break/continue; nothing may
	// contribute from this environment until a branch joins it.
	StateControlEnd EnvState = iota
	// StateUnreachable: no predecessor has flowed here yet; Locals is nil;
	// the first Goto into it overwrites wholesale.
	StateUnreachable
	// StateReached: control can flow here from exactly one predecessor.
	StateReached
	// StateMerged: two or more predecessors have flowed here.
	StateMerged
)

// Env is a per-control-flow-point snapshot: the current control and effect
// dependency plus the current renaming of every local. Its lifetime is the
// decode call that created it; see arena.go's doc comment on Go's GC
// standing in for the source's manual arena deallocation.
type Env struct {
	State   EnvState
	Control NodeHandle
	Effect  NodeHandle
	Locals  []NodeHandle
}

// reachable reports whether statements may currently contribute from env.
func (e *Env) reachable() bool {
	return e != nil && (e.State == StateReached || e.State == StateMerged)
}

// blockFrame is pushed on entering a block/loop/switch.
type blockFrame struct {
	contEnv  *Env // non-nil only for loops: destination of `continue`
	breakEnv *Env // destination of `break` and of falling off the block end
}

// ifFrame is pushed by decodeIf on structural entry to an if/if-then,
// recording the two post-branch environments. Ternary and switch do not
// push one.
type ifFrame struct {
	trueEnv  *Env
	falseEnv *Env
}
