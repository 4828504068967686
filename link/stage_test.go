// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "testing"

func TestShaderStageString(t *testing.T) {
	cases := map[ShaderStage]string{
		StageVertex:   "vertex",
		StageGeometry: "geometry",
		StageFragment: "fragment",
		numStages:     "unknown",
	}
	for stage, want := range cases {
		if got := stage.String(); got != want {
			t.Errorf("ShaderStage(%d).String() = %q, want %q", stage, got, want)
		}
	}
}

func TestVerticesIn(t *testing.T) {
	cases := []struct {
		prim      InputPrimitive
		n         int
		known     bool
	}{
		{PrimPoints, 1, true},
		{PrimLines, 2, true},
		{PrimTriangles, 3, true},
		{PrimLinesAdjacency, 4, true},
		{PrimTrianglesAdjacency, 6, true},
		{InputPrimitive(99), 3, false},
	}
	for _, c := range cases {
		n, known := c.prim.verticesIn()
		if n != c.n || known != c.known {
			t.Errorf("InputPrimitive(%d).verticesIn() = (%d, %v), want (%d, %v)", c.prim, n, known, c.n, c.known)
		}
	}
}

func TestBuiltinAttributeName(t *testing.T) {
	if name, ok := builtinAttributeName(VertAttribPos); !ok || name != "gl_Vertex" {
		t.Errorf("builtinAttributeName(VertAttribPos) = (%q, %v)", name, ok)
	}
	if name, ok := builtinAttributeName(VertAttribTex0 + 3); !ok || name != "gl_MultiTexCoord3" {
		t.Errorf("builtinAttributeName(VertAttribTex0+3) = (%q, %v)", name, ok)
	}
	if _, ok := builtinAttributeName(VertAttribGeneric0); ok {
		t.Error("builtinAttributeName(VertAttribGeneric0) should not be a built-in")
	}
}

func TestBuiltinVaryingName(t *testing.T) {
	if name, ok := builtinVaryingName(VertResultPos); !ok || name != "gl_Position" {
		t.Errorf("builtinVaryingName(VertResultPos) = (%q, %v)", name, ok)
	}
	if name, ok := builtinVaryingName(VertResultTex0 + 2); !ok || name != "gl_TexCoord[2]" {
		t.Errorf("builtinVaryingName(VertResultTex0+2) = (%q, %v)", name, ok)
	}
	if _, ok := builtinVaryingName(VertResultVar0); ok {
		t.Error("builtinVaryingName(VertResultVar0) should not be a built-in, it's the generic varying base")
	}
}
