// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "testing"

func TestResolveTransformFeedbackNoneRequested(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)
	if !resolveTransformFeedback(lp) {
		t.Fatalf("empty TransformFeedback should trivially succeed: %s", lp.InfoLog)
	}
}

func TestResolveTransformFeedbackMissingName(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)
	lp.VertexProgram = newProgram(StageVertex)
	lp.TransformFeedback = TransformFeedback{VaryingNames: []string{"vNormal"}}
	if resolveTransformFeedback(lp) {
		t.Fatal("expected failure for a varying the vertex shader does not emit")
	}
	want := "vertex shader does not emit vNormal"
	if lp.InfoLog != want {
		t.Errorf("InfoLog = %q, want %q", lp.InfoLog, want)
	}
}

func TestResolveTransformFeedbackDuplicateName(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)
	lp.VertexProgram = newProgram(StageVertex)
	lp.Varying.Append(Parameter{Name: "vColor", Kind: KindVarying, Size: 4, DataType: TypeVec4})
	lp.TransformFeedback = TransformFeedback{VaryingNames: []string{"vColor", "vColor"}}
	if resolveTransformFeedback(lp) {
		t.Fatal("expected failure for a duplicated transform feedback varying name")
	}
}

// Scenario 5: interleaved mode, four vec4 varyings (16 components) with
// MaxTransformFeedbackInterleavedComponents = 12.
func TestResolveTransformFeedbackOverflow(t *testing.T) {
	lp := NewLinkedProgram(Limits{MaxTransformFeedbackInterleavedComponents: 12})
	lp.VertexProgram = newProgram(StageVertex)

	names := []string{"v0", "v1", "v2", "v3"}
	for _, n := range names {
		lp.Varying.Append(Parameter{Name: n, Kind: KindVarying, Size: 4, DataType: TypeVec4})
	}
	lp.TransformFeedback = TransformFeedback{VaryingNames: names, BufferMode: TFInterleaved}

	if resolveTransformFeedback(lp) {
		t.Fatal("expected a components-over-limit failure")
	}
	want := "Too many feedback components: 16, max is 12"
	if lp.InfoLog != want {
		t.Errorf("InfoLog = %q, want %q", lp.InfoLog, want)
	}
}

func TestAppendBuiltinVaryingsIsIdempotentAndSkipsUnknownBits(t *testing.T) {
	lp := NewLinkedProgram(DefaultLimits)
	prog := newProgram(StageVertex)
	prog.OutputsWritten = 1<<uint(VertResultPos) | 1<<uint(VertResultVar0)

	appendBuiltinVaryings(lp, prog)
	appendBuiltinVaryings(lp, prog)

	if i := lp.Varying.Find("gl_Position"); i < 0 {
		t.Error("gl_Position should be appended as a built-in varying")
	}
	if lp.Varying.Len() != 1 {
		t.Errorf("len = %d, want 1 (idempotent append, and the generic-varying-base bit is not a built-in)", lp.Varying.Len())
	}
}
