package wfcore

// decodeBlock handles both `block` and `loop`: a LEB128-prefixed sequence of
// statements. A block's type is simply its last statement's type (already
// correctly synthesized by that statement itself, so no separate peeling
// step is needed for nested blocks). A loop is always Stmt-typed: its body
// may run zero or more times, so it never yields a single value.
func (d *decoder) decodeBlock(pc int, isLoop bool) *Tree {
	count, ok := d.readIndex(pc)
	if !ok {
		return nil
	}

	breakEnv := d.unreachableEnv()
	frame := &blockFrame{breakEnv: breakEnv}
	if isLoop {
		d.prepareForLoop(d.env)
		frame.contEnv = d.env
		d.env = d.split(d.env)
	}
	d.blockStack = append(d.blockStack, frame)

	children := make([]*Tree, count)
	for i := 0; i < count; i++ {
		children[i] = d.decodeNode(nil)
		if d.failed() {
			return nil
		}
	}

	if isLoop {
		d.goTo(d.env, frame.contEnv)
	} else {
		d.goTo(d.env, breakEnv)
	}
	d.blockStack = d.blockStack[:len(d.blockStack)-1]
	d.env = breakEnv

	typ := Stmt
	if !isLoop && count > 0 {
		typ = children[count-1].Type
	}
	tree := d.arena.newTree(typ, count, pc)
	tree.Children = children
	if count > 0 {
		tree.Node = children[count-1].Node
	}
	return tree
}

// branchFrom builds the two successor environments of a condition evaluated
// in env. The caller reaches decodeNode at least once between entering the
// enclosing statement and calling this, so env is always reachable here.
func (d *decoder) branchFrom(env *Env, cond NodeHandle) (trueEnv, falseEnv *Env) {
	trueCtrl, falseCtrl := d.builder.Branch(cond)
	trueEnv = &Env{State: StateReached, Control: trueCtrl, Effect: env.Effect, Locals: append([]NodeHandle(nil), env.Locals...)}
	falseEnv = &Env{State: StateReached, Control: falseCtrl, Effect: env.Effect, Locals: append([]NodeHandle(nil), env.Locals...)}
	return trueEnv, falseEnv
}

func (d *decoder) branch(cond NodeHandle) (trueEnv, falseEnv *Env) {
	return d.branchFrom(d.env, cond)
}

func (d *decoder) decodeIf(pc int, hasElse bool) *Tree {
	d.pc = pc + 1
	i32 := I32
	cond := d.decodeNode(&i32)
	if d.failed() {
		return nil
	}

	trueEnv, falseEnv := d.branch(cond.Node)
	d.ifStack = append(d.ifStack, &ifFrame{trueEnv: trueEnv, falseEnv: falseEnv})

	d.env = trueEnv
	thenTree := d.decodeNode(nil)
	if d.failed() {
		return nil
	}
	thenExit := d.env

	var elseTree *Tree
	elseExit := falseEnv
	if hasElse {
		d.env = falseEnv
		elseTree = d.decodeNode(nil)
		if d.failed() {
			return nil
		}
		elseExit = d.env
	}

	d.ifStack = d.ifStack[:len(d.ifStack)-1]

	result := d.unreachableEnv()
	d.goTo(thenExit, result)
	d.goTo(elseExit, result)
	d.env = result

	count := 2
	if hasElse {
		count = 3
	}
	tree := d.arena.newTree(Stmt, count, pc)
	tree.Children[0] = cond
	tree.Children[1] = thenTree
	if hasElse {
		tree.Children[2] = elseTree
	}
	return tree
}

func (d *decoder) decodeTernary(pc int) *Tree {
	d.pc = pc + 1
	i32 := I32
	cond := d.decodeNode(&i32)
	if d.failed() {
		return nil
	}

	trueEnv, falseEnv := d.branch(cond.Node)

	d.env = trueEnv
	trueVal := d.decodeNode(nil)
	if d.failed() {
		return nil
	}
	thenExit := d.env

	d.env = falseEnv
	falseVal := d.decodeNode(nil)
	if d.failed() {
		return nil
	}
	elseExit := d.env

	if trueVal.Type != falseVal.Type {
		d.fail(errTypeCheck, pc, "ternary branches disagree: %s vs %s", trueVal.Type, falseVal.Type)
		return nil
	}

	result := d.unreachableEnv()
	d.goTo(thenExit, result)
	d.goTo(elseExit, result)
	d.env = result

	typ := trueVal.Type
	tree := d.arena.newTree(typ, 3, pc)
	tree.Children[0], tree.Children[1], tree.Children[2] = cond, trueVal, falseVal

	if trueVal.Node == falseVal.Node {
		tree.Node = trueVal.Node
	} else {
		tree.Node = d.builder.Phi(typ, []NodeHandle{trueVal.Node, falseVal.Node}, result.Control)
	}
	return tree
}

func (d *decoder) decodeComma(pc int) *Tree {
	d.pc = pc + 1
	first := d.decodeNode(nil)
	if d.failed() {
		return nil
	}
	second := d.decodeNode(nil)
	if d.failed() {
		return nil
	}
	tree := d.arena.newTree(second.Type, 2, pc)
	tree.Children[0], tree.Children[1] = first, second
	tree.Node = second.Node
	return tree
}

func (d *decoder) decodeBreakContinue(pc int, isBreak bool) *Tree {
	depth, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	idx := len(d.blockStack) - 1 - depth
	if idx < 0 {
		if isBreak {
			d.fail(errImproperlyNestedBreak, pc, "break depth %d exceeds enclosing block nesting", depth)
		} else {
			d.fail(errImproperlyNestedContinue, pc, "continue depth %d exceeds enclosing block nesting", depth)
		}
		return nil
	}
	frame := d.blockStack[idx]
	target := frame.breakEnv
	if !isBreak {
		if frame.contEnv == nil {
			d.fail(errImproperContinue, pc, "continue target at depth %d is not a loop", depth)
			return nil
		}
		target = frame.contEnv
	}
	d.goTo(d.env, target)
	return d.arena.newTree(Stmt, 0, pc)
}

func (d *decoder) decodeReturn(pc int) *Tree {
	d.pc = pc + 1
	sig := d.fn.Signature()
	if len(sig.Returns) == 0 {
		d.builder.ReturnVoid()
		tree := d.arena.newTree(Stmt, 0, pc)
		d.kill(d.env)
		return tree
	}

	children := make([]*Tree, len(sig.Returns))
	values := make([]NodeHandle, len(sig.Returns))
	for i, rt := range sig.Returns {
		rt := rt
		val := d.decodeNode(&rt)
		if d.failed() {
			return nil
		}
		children[i] = val
		values[i] = val.Node
	}
	tree := d.arena.newTree(Stmt, len(children), pc)
	tree.Children = children
	d.builder.Return(values)
	d.kill(d.env)
	return tree
}

// compareBranch synthesizes the i32.eq compare a switch case label needs
// (Int32Constant(caseIdx), Binop(i32.eq, key, caseIdx)) and branches on it
// from env, the environment in which no earlier case has matched yet.
func (d *decoder) compareBranch(env *Env, key NodeHandle, caseIdx int) (trueEnv, falseEnv *Env) {
	caseVal := d.builder.Int32Constant(int32(caseIdx))
	cond := d.builder.Binop(OpI32Eq, key, caseVal)
	return d.branchFrom(env, cond)
}

// decodeSwitch lowers `switch`/`switch-nf` into a chain of per-case
// compares: case i is reached either by matching Int32Constant(i) against
// the key, or (for plain `switch`) by falling through case i-1. The last
// case's no-match edge is the implicit default, joined straight into
// break_env. `switch-nf` instead joins every case's fallthrough edge
// directly into break_env, skipping the next case's body.
func (d *decoder) decodeSwitch(pc int, fallthroughDefault bool) *Tree {
	caseCount, ok := d.readIndex(pc)
	if !ok {
		return nil
	}
	i32 := I32
	tag := d.decodeNode(&i32)
	if d.failed() {
		return nil
	}

	breakEnv := d.unreachableEnv()
	d.blockStack = append(d.blockStack, &blockFrame{breakEnv: breakEnv})

	children := make([]*Tree, caseCount+1)
	children[0] = tag

	trueEnv, falseEnv := d.compareBranch(d.env, tag.Node, 0)
	d.env = trueEnv

	for i := 0; i < caseCount; i++ {
		children[i+1] = d.decodeNode(nil)
		if d.failed() {
			return nil
		}
		fallthru := d.env

		if i < caseCount-1 {
			var nextTrue *Env
			nextTrue, falseEnv = d.compareBranch(falseEnv, tag.Node, i+1)
			next := nextTrue
			if !fallthroughDefault {
				next = breakEnv
			}
			if fallthru.reachable() {
				d.goTo(fallthru, next)
			}
			d.env = nextTrue
		} else {
			d.goTo(falseEnv, breakEnv)
			if fallthru.reachable() {
				d.goTo(fallthru, breakEnv)
			}
		}
	}

	d.blockStack = d.blockStack[:len(d.blockStack)-1]
	d.env = breakEnv

	tree := d.arena.newTree(Stmt, caseCount+1, pc)
	tree.Children = children
	return tree
}
