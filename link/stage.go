// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "fmt"

// stage.go identifies the three programmable shader stages and the
// register-file base indices instructions use to address into them once
// linked. The numbering is modeled on the desktop-GL ARB_{vertex,fragment}
// _program layout but is this package's own; see the constant block below.

// ShaderStage identifies one of the three programmable pipeline stages a
// shader object can target.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageGeometry
	StageFragment
	numStages
)

// String is used in diagnostics and InfoLog messages.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Base register indices. These follow the conventional desktop-GL
// ARB_{vertex,fragment}_program numbering closely enough to keep the
// ranges non-overlapping and the ordering familiar, but are not a
// verbatim port of any single header: the spec leaves the exact
// symbolic constants unspecified, so these are this linker's own.
const (
	VertAttribPos      = 0
	VertAttribNormal   = 2
	VertAttribColor    = 3
	VertAttribTex0     = 6
	VertAttribGeneric0 = 16

	VertResultPos                 = 0
	VertResultFrontColor           = 1
	VertResultBackColor            = 2
	VertResultFrontSecondaryColor = 3
	VertResultBackSecondaryColor  = 4
	VertResultFogCoord            = 5
	VertResultPointSize           = 6
	VertResultClipVertex          = 7
	VertResultTex0                = 8
	VertResultVar0                = 16

	FragAttribTex0  = 8
	FragResultColor = 1 // unified gl_FragColor
	FragResultData0 = 2 // indexed gl_FragData[0..]
	FragAttribVar0  = 16

	GeomAttribVar0 = 0
	GeomResultTex0 = 8
	GeomResultVar0 = 16

	MaxGenericAttribs = 16
)

// InputPrimitive is the geometry-stage input topology, declared by the
// geometry shader's layout qualifiers.
type InputPrimitive uint8

const (
	PrimPoints InputPrimitive = iota
	PrimLines
	PrimTriangles
	PrimLinesAdjacency
	PrimTrianglesAdjacency
)

// verticesIn returns the gl_VerticesIn constant injected into geometry
// shader sources by the assembler, per §4.1. Unknown primitives default to
// 3 (triangle) with the caller expected to log a diagnostic.
func (p InputPrimitive) verticesIn() (n int, known bool) {
	switch p {
	case PrimPoints:
		return 1, true
	case PrimLines:
		return 2, true
	case PrimTriangles:
		return 3, true
	case PrimLinesAdjacency:
		return 4, true
	case PrimTrianglesAdjacency:
		return 6, true
	default:
		return 3, false
	}
}

// GeometryState holds the geometry stage's auxiliary declaration state,
// parsed out-of-band from the shader object's layout qualifiers.
type GeometryState struct {
	InputPrimitive InputPrimitive
	VerticesOut    int
	OutputType     InputPrimitive
}

// builtinAttributeName maps a legacy fixed-function vertex attribute bit
// (as it appears in Program.PreLinkInputsRead) to its canonical name, for
// the attribute resolver's final pre-defined-attribute emission (§4.5
// step 4). Bits with no entry are skipped, same as the built-in varying
// table in builtinVaryingName below.
func builtinAttributeName(bit int) (name string, ok bool) {
	switch bit {
	case VertAttribPos:
		return "gl_Vertex", true
	case VertAttribNormal:
		return "gl_Normal", true
	case VertAttribColor:
		return "gl_Color", true
	case VertAttribTex0, VertAttribTex0 + 1, VertAttribTex0 + 2, VertAttribTex0 + 3,
		VertAttribTex0 + 4, VertAttribTex0 + 5, VertAttribTex0 + 6, VertAttribTex0 + 7:
		return fmt.Sprintf("gl_MultiTexCoord%d", bit-VertAttribTex0), true
	default:
		return "", false
	}
}

// builtinVaryingName maps a legacy fixed-function vertex result bit (as it
// appears in a vertex or geometry Program.OutputsWritten) to the built-in
// varying name it implicitly declares, for the transform-feedback
// resolver in feedback.go. Bits with no entry are skipped: they are
// ordinary generic varyings, already named by the program's own varying
// declarations.
func builtinVaryingName(bit int) (name string, ok bool) {
	switch bit {
	case VertResultPos:
		return "gl_Position", true
	case VertResultPointSize:
		return "gl_PointSize", true
	case VertResultFogCoord:
		return "gl_FogFragCoord", true
	case VertResultFrontColor:
		return "gl_FrontColor", true
	case VertResultBackColor:
		return "gl_BackColor", true
	case VertResultFrontSecondaryColor:
		return "gl_FrontSecondaryColor", true
	case VertResultBackSecondaryColor:
		return "gl_BackSecondaryColor", true
	case VertResultClipVertex:
		return "gl_ClipVertex", true
	case VertResultTex0, VertResultTex0 + 1, VertResultTex0 + 2, VertResultTex0 + 3,
		VertResultTex0 + 4, VertResultTex0 + 5, VertResultTex0 + 6, VertResultTex0 + 7:
		return fmt.Sprintf("gl_TexCoord[%d]", bit-VertResultTex0), true
	default:
		return "", false
	}
}
