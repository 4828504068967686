// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "testing"

func TestAppendUniformUpdatesExistingEntry(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)
	appendUniform(lp, "mvp", StageVertex, 2, true)
	appendUniform(lp, "mvp", StageFragment, 5, true)

	if len(lp.Uniforms) != 1 {
		t.Fatalf("len(Uniforms) = %d, want 1", len(lp.Uniforms))
	}
	u := lp.Uniforms[0]
	if u.StageSlot[StageVertex] != 2 || u.StageSlot[StageFragment] != 5 {
		t.Errorf("StageSlot = %+v, want vertex=2 fragment=5", u.StageSlot)
	}
	if u.StageSlot[StageGeometry] != -1 {
		t.Errorf("StageSlot[Geometry] = %d, want -1 (unbound)", u.StageSlot[StageGeometry])
	}
}

// Scenario 4: vertex uses samplers s0=0,s1=1; fragment uses s2=0,s3=1,s4=2.
// After link, program-wide slots are s0=0,s1=1,s2=2,s3=3,s4=4; TEX
// instructions in each stage reference the new slots.
func TestLinkUniformsSamplerRemap(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)

	vert := newProgram(StageVertex)
	vert.Parameters.Append(Parameter{Name: "s0", Kind: KindSampler, Used: true, InitialValues: []float32{0}})
	vert.Parameters.Append(Parameter{Name: "s1", Kind: KindSampler, Used: true, InitialValues: []float32{1}})
	vert.Instructions = []Instruction{
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileSampler}),
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileSampler}),
	}
	vert.Instructions[0].TexSrcUnit = 0
	vert.Instructions[1].TexSrcUnit = 1
	if !linkUniforms(lp, vert) {
		t.Fatalf("vertex linkUniforms failed: %s", lp.InfoLog)
	}

	frag := newProgram(StageFragment)
	frag.Parameters.Append(Parameter{Name: "s2", Kind: KindSampler, Used: true, InitialValues: []float32{0}})
	frag.Parameters.Append(Parameter{Name: "s3", Kind: KindSampler, Used: true, InitialValues: []float32{1}})
	frag.Parameters.Append(Parameter{Name: "s4", Kind: KindSampler, Used: true, InitialValues: []float32{2}})
	frag.Instructions = []Instruction{
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileSampler}),
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileSampler}),
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileSampler}),
	}
	frag.Instructions[0].TexSrcUnit = 0
	frag.Instructions[1].TexSrcUnit = 1
	frag.Instructions[2].TexSrcUnit = 2
	if !linkUniforms(lp, frag) {
		t.Fatalf("fragment linkUniforms failed: %s", lp.InfoLog)
	}

	wantVert := []int32{0, 1}
	for i, want := range wantVert {
		if vert.Instructions[i].TexSrcUnit != want {
			t.Errorf("vert.Instructions[%d].TexSrcUnit = %d, want %d", i, vert.Instructions[i].TexSrcUnit, want)
		}
	}
	wantFrag := []int32{2, 3, 4}
	for i, want := range wantFrag {
		if frag.Instructions[i].TexSrcUnit != want {
			t.Errorf("frag.Instructions[%d].TexSrcUnit = %d, want %d", i, frag.Instructions[i].TexSrcUnit, want)
		}
	}

	if lp.numSamplers != 5 {
		t.Errorf("numSamplers = %d, want 5", lp.numSamplers)
	}
	// Each stage's samplersUsedMask reflects only that stage's own sampler use.
	if vert.SamplersUsedMask != (1<<0 | 1<<1) {
		t.Errorf("vert.SamplersUsedMask = %b, want bits 0,1", vert.SamplersUsedMask)
	}
	if frag.SamplersUsedMask != (1<<2 | 1<<3 | 1<<4) {
		t.Errorf("frag.SamplersUsedMask = %b, want bits 2,3,4", frag.SamplersUsedMask)
	}
}

func TestLinkUniformsTooManySamplers(t *testing.T) {
	lp := NewLinkedProgram(Limits{MaxTextureImageUnits: 1})
	prog := newProgram(StageFragment)
	prog.Parameters.Append(Parameter{Name: "s0", Kind: KindSampler, Used: true})
	prog.Parameters.Append(Parameter{Name: "s1", Kind: KindSampler, Used: true})
	if linkUniforms(lp, prog) {
		t.Fatal("expected too-many-samplers failure")
	}
}
