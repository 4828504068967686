// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "fmt"

// slotBases returns, for each parameter in pl in list order, the base
// register slot it occupies, and the total number of slots pl's
// parameters span. Multi-component/array parameters occupy Slots()
// successive slots (§4.3 rule 6); the varying register file has no other
// numbering scheme, so slot position is purely a function of declaration
// order.
func slotBases(pl *ParameterList) (bases []int32, total int) {
	bases = make([]int32, pl.Len())
	cursor := 0
	for i := 0; i < pl.Len(); i++ {
		bases[i] = int32(cursor)
		cursor += pl.At(i).Slots()
	}
	return bases, cursor
}

// linkVaryings runs the varying linker (§4.3) for one stage, merging
// prog's varyings into lp.Varying and rewriting every Varying-file
// register reference in prog's instructions to the stage's linked input
// or output file. It returns false (with lp.InfoLog set) on the first
// mismatch.
func linkVaryings(lp *LinkedProgram, prog *Program) bool {
	bases, _ := slotBases(prog.Varyings)
	remap := map[int32]int32{}     // stage-local slot -> merged slot
	flags := map[int32]ParameterFlag{} // merged slot -> agreed qualifier bits

	for i := 0; i < prog.Varyings.Len(); i++ {
		v := prog.Varyings.At(i)
		oldBase := bases[i]
		slots := v.Slots()

		var newBase int32
		if j := lp.Varying.Find(v.Name); j >= 0 {
			star := lp.Varying.At(j)
			if v.Size != star.Size {
				linkError(lp, "mismatched varying variable types")
				return false
			}
			if (v.Flags & FlagCentroid) != (star.Flags & FlagCentroid) {
				linkError(lp, fmt.Sprintf("centroid modifier mismatch for '%s'", v.Name))
				return false
			}
			if (v.Flags & FlagInvariant) != (star.Flags & FlagInvariant) {
				linkError(lp, fmt.Sprintf("invariant modifier mismatch for '%s'", v.Name))
				return false
			}
			starBases, _ := slotBases(lp.Varying)
			newBase = starBases[j]
		} else {
			_, total := slotBases(lp.Varying)
			newBase = int32(total)
			lp.Varying.Append(*v)
			if total+slots > lp.Limits.MaxVarying {
				linkError(lp, "Too many varying variables")
				return false
			}
		}

		for k := 0; k < slots; k++ {
			remap[oldBase+int32(k)] = newBase + int32(k)
			flags[newBase+int32(k)] = v.Flags
		}
	}

	srcFile, dstFile, srcBase, dstBase := varyingRewriteTarget(prog.Stage)

	rewriteRegisters(prog.Instructions, func(ref *RegisterRef, isDst bool) {
		if ref.File != FileVarying {
			return
		}
		newSlot, ok := remap[ref.Index]
		if !ok {
			return
		}
		if isDst {
			ref.File = dstFile
			ref.Index = dstBase + newSlot
		} else {
			ref.File = srcFile
			ref.Index = srcBase + newSlot
		}
	}, nil)

	for slot, f := range flags {
		prog.InputFlags[srcBase+slot] = f
		prog.OutputFlags[dstBase+slot] = f
	}

	// Recomputed by the post-link analyzer (§4.7).
	prog.InputsRead = 0
	prog.OutputsWritten = 0
	return true
}

// varyingRewriteTarget returns the register file/base a stage's source
// and destination varying references are retargeted to, per §4.3's
// per-stage rewrite table.
func varyingRewriteTarget(stage ShaderStage) (srcFile, dstFile RegisterFile, srcBase, dstBase int32) {
	switch stage {
	case StageVertex:
		return FileOutput, FileOutput, VertResultVar0, VertResultVar0
	case StageGeometry:
		return FileInput, FileOutput, GeomAttribVar0, GeomResultVar0
	case StageFragment:
		return FileInput, FileInput, FragAttribVar0, FragAttribVar0
	default:
		return FileInput, FileOutput, 0, 0
	}
}
