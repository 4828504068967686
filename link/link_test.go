// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"context"
	"testing"
)

func buildTestLinkedProgram() *LinkedProgram {
	lp := NewLinkedProgram(DefaultLimits)

	vert := newProgram(StageVertex)
	vert.Varyings.Append(Parameter{Name: "vColor", Kind: KindVarying, Size: 4, DataType: TypeVec4})
	vert.Attributes.Append(Parameter{Name: "aColor", Kind: KindAttribute, Size: 4, InitialValues: []float32{0}})
	vert.Instructions = []Instruction{
		ins(OpMov, RegisterRef{File: FileOutput, Index: VertResultPos}, RegisterRef{File: FileInput, Index: VertAttribGeneric0}),
		ins(OpMov, RegisterRef{File: FileVarying, Index: 0}, RegisterRef{File: FileInput, Index: VertAttribGeneric0}),
	}
	vert.OutputsWritten = 1 << uint(VertResultPos)
	vert.PreLinkInputsRead = 1 << uint(VertAttribGeneric0)
	lp.Attach(StageVertex, resolvedShader(StageVertex, vert))

	frag := newProgram(StageFragment)
	frag.Varyings.Append(Parameter{Name: "vColor", Kind: KindVarying, Size: 4, DataType: TypeVec4})
	frag.Parameters.Append(Parameter{Name: "tex0", Kind: KindSampler, Used: true, InitialValues: []float32{0}})
	frag.Instructions = []Instruction{
		ins(OpTex, RegisterRef{File: FileTemporary}, RegisterRef{File: FileVarying, Index: 0}),
	}
	frag.Instructions[0].TexSrcUnit = 0
	lp.Attach(StageFragment, resolvedShader(StageFragment, frag))

	return lp
}

func TestLinkSuccess(t *testing.T) {
	lp := buildTestLinkedProgram()
	ok := Link(context.Background(), lp, &stubCompiler{}, stubDriver{accept: true})
	if !ok {
		t.Fatalf("Link failed: %s", lp.InfoLog)
	}
	if !lp.LinkStatus {
		t.Error("LinkStatus should be true on success")
	}
	if lp.InfoLog != "" {
		t.Errorf("InfoLog should be empty on success, got %q", lp.InfoLog)
	}

	// P1: no linked instruction addresses FileVarying.
	for _, prog := range []*Program{lp.VertexProgram, lp.FragmentProgram} {
		rewriteRegisters(prog.Instructions, func(ref *RegisterRef, isDst bool) {
			if ref.File == FileVarying {
				t.Errorf("%v stage still references FileVarying after a successful link", prog.Stage)
			}
		}, nil)
	}

	if lp.Attributes.Find("aColor") < 0 {
		t.Error("aColor attribute missing from the linked program")
	}
	if lp.Varying.Find("vColor") < 0 {
		t.Error("vColor varying missing from the merged varying list")
	}
}

func TestLinkDriverRejectionFailsLink(t *testing.T) {
	lp := buildTestLinkedProgram()
	ok := Link(context.Background(), lp, &stubCompiler{}, stubDriver{accept: false})
	if ok {
		t.Fatal("expected Link to fail when the driver rejects every stage")
	}
	if lp.LinkStatus {
		t.Error("LinkStatus should be false on driver rejection")
	}
}

// P8 (partial): re-linking an already-linked program from the same shader
// inputs keeps the vertex instruction count and the merged varying count.
func TestLinkIsIdempotentAcrossRepeatedCalls(t *testing.T) {
	lp := buildTestLinkedProgram()
	if !Link(context.Background(), lp, &stubCompiler{}, stubDriver{accept: true}) {
		t.Fatalf("first link failed: %s", lp.InfoLog)
	}
	firstVertLen := len(lp.VertexProgram.Instructions)
	firstVaryingCount := lp.Varying.Len()

	if !Link(context.Background(), lp, &stubCompiler{}, stubDriver{accept: true}) {
		t.Fatalf("second link failed: %s", lp.InfoLog)
	}
	if len(lp.VertexProgram.Instructions) != firstVertLen {
		t.Errorf("instruction count changed across relinks: %d vs %d", len(lp.VertexProgram.Instructions), firstVertLen)
	}
	if lp.Varying.Len() != firstVaryingCount {
		t.Errorf("varying count changed across relinks: %d vs %d", lp.Varying.Len(), firstVaryingCount)
	}
}
