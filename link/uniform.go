// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "fmt"

// samplerScratchBound is the size of the per-stage scratch table mapping
// a sampler's pre-link slot to its linked slot. Per the design notes this
// replaces the original C implementation's fixed 200-entry array with a
// map, while preserving its "out-of-range original slot is silently
// ignored" quirk: a sampler whose pre-link slot is >= this bound is never
// remapped and its TEX instructions keep referencing the old slot.
const samplerScratchBound = 200

// Uniform is one program-wide uniform or sampler entry (§3). StageSlot
// records, per stage, the stage-local parameter index backing this
// uniform, or -1 if the stage does not bind it.
type Uniform struct {
	Name        string
	StageSlot   [numStages]int32
	Initialized bool
}

// appendUniform implements the append(U, name, stage, index) operation of
// §4.4: update the existing entry for name if one exists, otherwise
// insert a new one with every other stage's slot unbound.
func appendUniform(lp *LinkedProgram, name string, stage ShaderStage, stageIndex int32, initialized bool) {
	key := normalizeName(name)
	for _, u := range lp.Uniforms {
		if normalizeName(u.Name) == key {
			u.StageSlot[stage] = stageIndex
			return
		}
	}
	u := &Uniform{Name: name, Initialized: initialized}
	for i := range u.StageSlot {
		u.StageSlot[i] = -1
	}
	u.StageSlot[stage] = stageIndex
	lp.Uniforms = append(lp.Uniforms, u)
}

// linkUniforms runs the uniform & sampler linker (§4.4) for one stage:
// every used Uniform or Sampler parameter is appended into lp.Uniforms,
// every used Sampler additionally claims a fresh program-wide texture
// unit, and every TEX-class instruction's texture unit is rewritten to
// that new slot.
func linkUniforms(lp *LinkedProgram, prog *Program) bool {
	samplerMap := map[int32]int32{} // pre-link slot -> linked slot, this stage only

	for i := 0; i < prog.Parameters.Len(); i++ {
		p := prog.Parameters.At(i)
		if !p.Used || (p.Kind != KindUniform && p.Kind != KindSampler) {
			continue
		}

		if p.Kind == KindSampler {
			var oldSlot int32
			if len(p.InitialValues) > 0 {
				oldSlot = int32(p.InitialValues[0])
			}
			newSlot := lp.numSamplers
			if int(newSlot) >= lp.Limits.MaxTextureImageUnits {
				linkError(lp, fmt.Sprintf("Too many texture samplers (%d, max is %d)", newSlot+1, lp.Limits.MaxTextureImageUnits))
				return false
			}
			if oldSlot >= 0 && oldSlot < samplerScratchBound {
				samplerMap[oldSlot] = newSlot
			}
			lp.numSamplers++
			if len(p.InitialValues) == 0 {
				p.InitialValues = make([]float32, 1)
			}
			p.InitialValues[0] = float32(newSlot)
		}

		appendUniform(lp, p.Name, prog.Stage, int32(i), p.Initialized)
	}

	rewriteRegisters(prog.Instructions, func(ref *RegisterRef, isDst bool) {}, func(ins *Instruction) {
		newSlot, ok := samplerMap[ins.TexSrcUnit]
		if !ok {
			return
		}
		ins.TexSrcUnit = newSlot
		prog.PerSamplerTextureTarget[newSlot] = ins.TexSrcTarget
		prog.SamplersUsedMask |= 1 << uint(newSlot)
		if ins.TexShadow {
			prog.ShadowSamplersMask |= 1 << uint(newSlot)
		}
	})
	return true
}
