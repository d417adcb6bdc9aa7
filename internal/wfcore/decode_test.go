package wfcore

import (
	"errors"
	"testing"
)

func TestConstantReturn(t *testing.T) {
	code := []byte{byte(OpI32Const8), 42}
	fn := &fakeEnv{sig: Signature{Returns: []ValueType{I32}}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if len(res.Trees) != 1 || res.Trees[0].Type != I32 {
		t.Fatalf("unexpected trees: %+v", res.Trees)
	}
	if b.countKind("return") != 1 {
		t.Fatalf("expected one return node, got %d", b.countKind("return"))
	}
}

func TestAddTwoParameters(t *testing.T) {
	code := []byte{byte(OpI32Add), byte(OpGetLocal), 0, byte(OpGetLocal), 1}
	fn := &fakeEnv{
		sig:    Signature{Params: []ValueType{I32, I32}, Returns: []ValueType{I32}},
		locals: []ValueType{I32, I32},
	}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if b.countKind("binop") != 1 {
		t.Fatalf("expected one binop node, got %d", b.countKind("binop"))
	}
	if b.started != 2 {
		t.Fatalf("expected Start(2), got Start(%d)", b.started)
	}
}

func TestTernaryJoinPhi(t *testing.T) {
	code := []byte{
		byte(OpTernary),
		byte(OpGetLocal), 0,
		byte(OpI32Const8), 1,
		byte(OpI32Const8), 0,
	}
	fn := &fakeEnv{
		sig:    Signature{Params: []ValueType{I32}, Returns: []ValueType{I32}},
		locals: []ValueType{I32},
	}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if b.countKind("phi") != 1 {
		t.Fatalf("expected one value phi, got %d", b.countKind("phi"))
	}
	if b.countKind("merge") != 1 {
		t.Fatalf("expected one control merge, got %d", b.countKind("merge"))
	}
}

func TestInfiniteLoopThenUnreachableCode(t *testing.T) {
	code := []byte{
		byte(OpLoop), 0, // zero-statement loop body, no break: never exits
		byte(OpNop), // unreachable: a statement past a dead end must fail decode
	}
	fn := &fakeEnv{sig: Signature{}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if res.OK {
		t.Fatalf("expected decode to fail on a statement past the infinite loop")
	}
	if !errors.Is(res.Err, errUnreachableCode) {
		t.Fatalf("expected errUnreachableCode, got %v", res.Err.Code)
	}
}

func TestBreakOutOfBlock(t *testing.T) {
	code := []byte{
		byte(OpBlock), 1,
		byte(OpBreak), 0,
	}
	fn := &fakeEnv{sig: Signature{}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if b.countKind("returnvoid") != 1 {
		t.Fatalf("expected break to rejoin into the implicit void return, got %d", b.countKind("returnvoid"))
	}
}

func TestMissingLEB128Operand(t *testing.T) {
	code := []byte{byte(OpGetLocal)} // truncated: no index byte follows
	fn := &fakeEnv{sig: Signature{}, locals: []ValueType{I32}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if res.OK {
		t.Fatalf("expected decode to fail on truncated operand")
	}
	if !errors.Is(res.Err, errExpectedLEB128) {
		t.Fatalf("expected errExpectedLEB128, got %v", res.Err.Code)
	}
}

func TestTypeMismatch(t *testing.T) {
	code := []byte{
		byte(OpI32Add),
		byte(OpGetLocal), 0, // local 0 is f64, i32.add wants i32
		byte(OpI32Const8), 1,
	}
	fn := &fakeEnv{
		sig:    Signature{Params: []ValueType{F64}},
		locals: []ValueType{F64},
	}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if res.OK {
		t.Fatalf("expected decode to fail on type mismatch")
	}
	if !errors.Is(res.Err, errTypeCheck) {
		t.Fatalf("expected errTypeCheck, got %v", res.Err.Code)
	}
}

func TestSwitchFallthroughToDefault(t *testing.T) {
	code := []byte{
		byte(OpSwitch), 2,
		byte(OpI32Const8), 0, // tag
		byte(OpNop), // case 0
		byte(OpNop), // case 1, reached by falling through case 0
	}
	fn := &fakeEnv{sig: Signature{}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if got := b.countKind("binop"); got != 2 {
		t.Fatalf("expected one i32.eq compare per case, got %d", got)
	}
	if got := b.countKind("branchT"); got != 2 {
		t.Fatalf("expected one branch per case, got %d", got)
	}
	if got := b.countKind("merge"); got != 2 {
		t.Fatalf("expected a merge joining the case-0 fallthrough into case 1 and another joining the implicit default into break, got %d", got)
	}
}

func TestSwitchNfSkipsFallthrough(t *testing.T) {
	code := []byte{
		byte(OpSwitchNf), 2,
		byte(OpI32Const8), 0, // tag
		byte(OpNop), // case 0, breaks implicitly
		byte(OpNop), // case 1, entered independently, also breaks implicitly
	}
	fn := &fakeEnv{sig: Signature{}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if got := b.countKind("binop"); got != 2 {
		t.Fatalf("expected one i32.eq compare per case, got %d", got)
	}
	if got := b.countKind("branchT"); got != 2 {
		t.Fatalf("expected one branch per case, got %d", got)
	}
	if got := b.countKind("merge"); got != 1 {
		t.Fatalf("no-fallthrough switch should join both case exits and the default edge into one break merge, got %d merge nodes", got)
	}
}

func TestCallDirect(t *testing.T) {
	code := []byte{
		byte(OpCallFunction), 0,
		byte(OpI32Const8), 7,
	}
	fn := &fakeEnv{
		sig:   Signature{},
		funcs: []Signature{{Params: []ValueType{I32}}},
	}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if !res.OK {
		t.Fatalf("decode failed: %v", res.Err)
	}
	if b.countKind("call") != 1 {
		t.Fatalf("expected one call node, got %d", b.countKind("call"))
	}
}

func TestInvalidLocalIndex(t *testing.T) {
	code := []byte{byte(OpGetLocal), 3}
	fn := &fakeEnv{sig: Signature{}, locals: []ValueType{I32}}
	b := newFakeBuilder()

	res := Decode(code, fn, b, nil)

	if res.OK {
		t.Fatalf("expected decode to fail on out-of-range local index")
	}
	if !errors.Is(res.Err, errInvalidLocalIndex) {
		t.Fatalf("expected errInvalidLocalIndex, got %v", res.Err.Code)
	}
}
