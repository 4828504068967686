// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// Opcode identifies an instruction's operation. The exact operation set is
// irrelevant to linking; only whether an opcode is TEX-class (and so reads
// a texture image unit) matters here.
type Opcode uint8

const (
	OpNop Opcode = iota
	OpMov
	OpAdd
	OpMul
	OpMad
	OpDp3
	OpDp4
	OpMin
	OpMax
	OpRsq
	OpTex  // sample a 2D/3D/cube texture
	OpTxb  // sample with explicit LOD bias
	OpTxl  // sample with explicit LOD
	OpTxp  // sample with projection
	OpTxd  // sample with explicit derivatives
	OpEnd
)

// IsTexClass reports whether op reads a texture image unit via
// Instruction.TexSrcUnit.
func (op Opcode) IsTexClass() bool {
	switch op {
	case OpTex, OpTxb, OpTxl, OpTxp, OpTxd:
		return true
	default:
		return false
	}
}

// Instruction is one fixed-layout IR record. Instructions are kept as a
// densely packed slice and register references are mutated in place by the
// rewriter; no instruction is ever rebuilt functionally.
type Instruction struct {
	Opcode Opcode
	Dst    RegisterRef
	Src    [3]RegisterRef
	NumSrc int // number of Src entries actually used, 0..3

	// Texture-opcode-only fields.
	TexSrcUnit   int32
	TexSrcTarget uint32
	TexShadow    bool
}

// regRefVisitor is invoked once per register reference an instruction
// carries (destination, then each used source), in place. isDst tells the
// callback which role the reference plays, needed because the geometry
// stage's varying linker retargets sources and destinations to different
// register files.
type regRefVisitor func(ref *RegisterRef, isDst bool)

// visitRefs calls fn for every register reference used by ins: its
// destination and its NumSrc live sources. Order is destination first,
// then sources in index order, matching the single linear pass the
// instruction rewriter performs.
func (ins *Instruction) visitRefs(fn regRefVisitor) {
	fn(&ins.Dst, true)
	for i := 0; i < ins.NumSrc; i++ {
		fn(&ins.Src[i], false)
	}
}

// rewriteRegisters is the shared instruction rewriter of §4.6. It performs
// a single linear pass over instructions and applies transform to every
// register reference, destination and sources alike. transform must be
// idempotent if repeated invocations with unchanged input are expected to
// be idempotent (required so the reconciliation passes remain unit
// testable in isolation: re-running a pass on its own output must be a
// no-op).
//
// When texUnit is non-nil it is invoked on each TEX-class instruction,
// right after transform has visited that instruction's register
// references, so it can edit TexSrcUnit. This mirrors the Uniform/Sampler Linker's need
// to remap sampler slots independent of any RegisterRef rewriting (a
// sampler's slot lives in TexSrcUnit, not in a register index).
func rewriteRegisters(instructions []Instruction, transform regRefVisitor, texUnit func(ins *Instruction)) {
	for i := range instructions {
		ins := &instructions[i]
		ins.visitRefs(transform)
		if texUnit != nil && ins.Opcode.IsTexClass() {
			texUnit(ins)
		}
	}
}
