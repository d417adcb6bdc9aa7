package wfcore

// split allocates a new environment that shares from's control/effect and
// copies its locals. The new environment is reached unless from itself was
// unreachable (in which case the copy is unreachable too); a nil from
// yields a fresh reached environment with nil fields.
func (d *decoder) split(from *Env) *Env {
	if from == nil {
		return &Env{State: StateReached}
	}
	env := &Env{Control: from.Control, Effect: from.Effect}
	if from.State == StateUnreachable {
		env.State = StateUnreachable
		return env
	}
	env.State = StateReached
	env.Locals = append([]NodeHandle(nil), from.Locals...)
	return env
}

// unreachableEnv allocates a fresh unreachable environment: the first Goto
// into it overwrites its fields wholesale.
func (d *decoder) unreachableEnv() *Env {
	return &Env{State: StateUnreachable}
}

// kill marks from as terminated; called at the end of every Goto.
func (d *decoder) kill(from *Env) {
	from.State = StateControlEnd
	from.Control = nil
	from.Effect = nil
	from.Locals = nil
}

// goTo propagates control from `from` into `to`, merging as needed. It is
// spelled goTo because the lowercase `goto` is a Go keyword.
func (d *decoder) goTo(from, to *Env) {
	if !from.reachable() {
		return
	}
	switch to.State {
	case StateUnreachable:
		to.State = StateReached
		to.Control = from.Control
		to.Effect = from.Effect
		to.Locals = append([]NodeHandle(nil), from.Locals...)

	case StateReached:
		merge := d.builder.Merge([]NodeHandle{to.Control, from.Control})
		to.Control = merge
		if from.Effect != to.Effect {
			to.Effect = d.builder.EffectPhi([]NodeHandle{to.Effect, from.Effect}, merge)
		}
		for i := range to.Locals {
			if from.Locals[i] != to.Locals[i] {
				typ := d.fn.GetLocalType(i)
				to.Locals[i] = d.builder.Phi(typ, []NodeHandle{to.Locals[i], from.Locals[i]}, merge)
			}
		}
		to.State = StateMerged

	case StateMerged:
		d.builder.AppendToMerge(to.Control, from.Control)
		n := d.builder.InputCount(to.Control)
		if from.Effect != to.Effect {
			if d.builder.IsPhiWithMerge(to.Effect, to.Control) {
				d.builder.AppendToPhi(to.Control, to.Effect, from.Effect)
			} else {
				prior := make([]NodeHandle, n)
				for i := 0; i < n-1; i++ {
					prior[i] = to.Effect
				}
				prior[n-1] = from.Effect
				to.Effect = d.builder.EffectPhi(prior, to.Control)
			}
		}
		for i := range to.Locals {
			if from.Locals[i] == to.Locals[i] {
				continue
			}
			if d.builder.IsPhiWithMerge(to.Locals[i], to.Control) {
				d.builder.AppendToPhi(to.Control, to.Locals[i], from.Locals[i])
				continue
			}
			typ := d.fn.GetLocalType(i)
			prior := make([]NodeHandle, n)
			for i2 := 0; i2 < n-1; i2++ {
				prior[i2] = to.Locals[i]
			}
			prior[n-1] = from.Locals[i]
			to.Locals[i] = d.builder.Phi(typ, prior, to.Control)
		}
	}
	d.kill(from)
}

// prepareForLoop turns env into a loop header: a merge-shaped environment
// whose control, effect, and every local are wrapped in a one-input phi
// that later backedge Gotos extend.
func (d *decoder) prepareForLoop(env *Env) {
	env.State = StateMerged
	header := d.builder.Loop(env.Control)
	env.Control = header
	env.Effect = d.builder.EffectPhi([]NodeHandle{env.Effect}, header)
	d.builder.Terminate(env.Effect, header)
	for i := range env.Locals {
		typ := d.fn.GetLocalType(i)
		env.Locals[i] = d.builder.Phi(typ, []NodeHandle{env.Locals[i]}, header)
	}
}
