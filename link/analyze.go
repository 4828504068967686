// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// analyzeProgram runs the post-link analyzer (§4.7): it recomputes
// numTemporaries, numAddressRegs, inputsRead and outputsWritten from
// scratch by scanning every register reference in prog's instructions.
// This relies, as the spec notes, on the compiler producing temporaries
// and address registers in a dense, zero-based sequence.
func analyzeProgram(prog *Program, limits Limits) {
	maxTemp := -1
	maxAddr := -1
	var inputsRead, outputsWritten uint64

	rewriteRegisters(prog.Instructions, func(ref *RegisterRef, isDst bool) {
		switch ref.File {
		case FileTemporary:
			if int(ref.Index) > maxTemp {
				maxTemp = int(ref.Index)
			}
		case FileAddress:
			if int(ref.Index) > maxAddr {
				maxAddr = int(ref.Index)
			}
		case FileInput:
			inputsRead |= maskFor(prog.Stage, *ref, limits, true)
			if prog.Stage == StageGeometry && ref.HasIndex2 {
				secondary := RegisterRef{File: FileInput, Index: ref.Index2, RelAddr: ref.RelAddr2}
				inputsRead |= maskFor(prog.Stage, secondary, limits, true)
			}
		case FileOutput:
			outputsWritten |= maskFor(prog.Stage, *ref, limits, false)
		}
	}, nil)

	if maxTemp >= 0 {
		prog.NumTemporaries = maxTemp + 1
	} else {
		prog.NumTemporaries = 0
	}
	if maxAddr >= 0 {
		prog.NumAddressRegs = maxAddr + 1
	} else {
		prog.NumAddressRegs = 0
	}
	prog.InputsRead = inputsRead
	prog.OutputsWritten = outputsWritten
}

// regRange is an inclusive [lo, hi] register index range.
type regRange struct{ lo, hi int32 }

// relRange returns the logically-addressable subrange a relative-address
// reference with the given base expands to, per §4.7's table. ok is false
// for any base not named in the table.
func relRange(stage ShaderStage, isInput bool, base int32, limits Limits) (regRange, bool) {
	switch {
	case stage == StageVertex && isInput && base == VertAttribTex0:
		return regRange{VertAttribTex0, VertAttribTex0 + 7}, true
	case stage == StageVertex && isInput && base == VertAttribGeneric0:
		return regRange{VertAttribGeneric0, 63}, true
	case stage == StageVertex && !isInput && base == VertResultTex0:
		return regRange{VertResultTex0, VertResultTex0 + int32(limits.MaxTextureCoordUnits) - 1}, true
	case stage == StageVertex && !isInput && base == VertResultVar0:
		return regRange{VertResultVar0, VertResultVar0 + int32(limits.MaxVarying) - 1}, true
	case stage == StageFragment && isInput && base == FragAttribTex0:
		return regRange{FragAttribTex0, FragAttribTex0 + 7}, true
	case stage == StageFragment && isInput && base == FragAttribVar0:
		return regRange{FragAttribVar0, FragAttribVar0 + int32(limits.MaxVarying) - 1}, true
	case stage == StageFragment && !isInput && base == FragResultData0:
		return regRange{FragResultData0, FragResultData0 + int32(limits.MaxDrawBuffers) - 1}, true
	case stage == StageGeometry && isInput && base == GeomAttribVar0:
		return regRange{GeomAttribVar0, GeomAttribVar0 + int32(limits.MaxVarying) - 1}, true
	case stage == StageGeometry && !isInput && base == GeomResultTex0:
		return regRange{GeomResultTex0, GeomResultTex0 + int32(limits.MaxTextureCoordUnits) - 1}, true
	case stage == StageGeometry && !isInput && base == GeomResultVar0:
		return regRange{GeomResultVar0, GeomResultVar0 + int32(limits.MaxVarying) - 1}, true
	default:
		return regRange{}, false
	}
}

// maskFor computes the bit(s) a single register reference contributes to
// an inputsRead/outputsWritten mask. A non-relative reference contributes
// its single bit. A relative-addressed reference whose base matches a
// known array in relRange contributes the whole array's range. Per the
// open question in §9, a relative-addressed reference whose base matches
// no known array degrades to the single-bit mask: some relative-address
// reads are under-approximated by design, preserved here for
// compatibility rather than fixed.
func maskFor(stage ShaderStage, ref RegisterRef, limits Limits, isInput bool) uint64 {
	if ref.RelAddr {
		if r, ok := relRange(stage, isInput, ref.Index, limits); ok {
			var mask uint64
			for i := r.lo; i <= r.hi && i < 64; i++ {
				if i >= 0 {
					mask |= 1 << uint(i)
				}
			}
			return mask
		}
	}
	if ref.Index < 0 || ref.Index >= 64 {
		return 0
	}
	return 1 << uint(ref.Index)
}
