// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "context"

// LinkedProgram is the top-level link target: the attached shader
// objects, the per-stage clones the linker writes to, and the
// program-wide merged symbol tables. A LinkedProgram is created by
// NewLinkedProgram; each call to Link resets its linked state and links
// it again. It is not safe for concurrent linking.
type LinkedProgram struct {
	// Attached holds the raw shader objects the application has attached
	// to this program, keyed by stage, in attachment order.
	Attached map[ShaderStage][]*CompiledShader

	// ES2Target requires both a vertex and a fragment stage to be
	// present, matching the stricter GLSL ES 2.0 linking rule.
	ES2Target bool

	// Geometry carries the geometry stage's declared input primitive,
	// output primitive, and max-vertices count, parsed out-of-band from
	// its layout qualifiers. Nil if no geometry shader is attached.
	Geometry *GeometryState

	// AttributeBindings are the application's pre-link generic vertex
	// attribute slot requests, keyed by attribute name.
	AttributeBindings AttributeBindings

	// TransformFeedback describes which varyings, if any, the
	// application wants captured.
	TransformFeedback TransformFeedback

	Limits Limits

	// VertexProgram, GeometryProgram, and FragmentProgram are the linked
	// clones produced for each present stage, nil if that stage has no
	// attached shader. They are the only programs the linker mutates.
	VertexProgram   *Program
	GeometryProgram *Program
	FragmentProgram *Program

	// Uniforms, Varying, and Attributes are the program-wide merged
	// symbol tables every stage's linker pass contributes to.
	Uniforms   []*Uniform
	Varying    *ParameterList
	Attributes *ParameterList

	numSamplers int32

	InfoLog    string
	LinkStatus bool
}

// NewLinkedProgram returns a LinkedProgram ready to have shader objects
// attached and Link called on it.
func NewLinkedProgram(limits Limits) *LinkedProgram {
	return &LinkedProgram{
		Attached:   map[ShaderStage][]*CompiledShader{},
		Limits:     limits,
		Uniforms:   nil,
		Varying:    NewParameterList(),
		Attributes: NewParameterList(),
	}
}

// Attach records a raw shader object against its stage, in attachment
// order, mirroring the host API's attachShader call. It is the caller's
// responsibility not to attach concurrently with a Link in progress.
func (lp *LinkedProgram) Attach(stage ShaderStage, shader *CompiledShader) {
	shader.Stage = stage
	lp.Attached[stage] = append(lp.Attached[stage], shader)
}

// linkError records msg as the program's single-message InfoLog and
// clears LinkStatus. Per the data model, InfoLog holds only the first
// error a link attempt encounters; later link errors (there are none,
// since every caller returns immediately) would not overwrite it.
func linkError(lp *LinkedProgram, msg string) {
	if lp.InfoLog == "" {
		lp.InfoLog = msg
	}
	lp.LinkStatus = false
}

// Link runs the full pipeline — source assembly, program cloning, varying
// linking, uniform/sampler linking, attribute resolution, post-link
// analysis, validation (including transform feedback and driver
// notification) — against lp's attached shader objects, for every stage
// that has one. It returns lp.LinkStatus; on failure lp.InfoLog carries
// the first violation encountered.
func Link(ctx context.Context, lp *LinkedProgram, compiler Compiler, driver Driver) bool {
	lp.InfoLog = ""
	lp.LinkStatus = true
	lp.Uniforms = nil
	lp.Varying = NewParameterList()
	lp.Attributes = NewParameterList()
	lp.numSamplers = 0
	lp.VertexProgram = nil
	lp.GeometryProgram = nil
	lp.FragmentProgram = nil

	stages := [numStages]ShaderStage{StageVertex, StageGeometry, StageFragment}
	clones := [numStages]*Program{}

	for _, stage := range stages {
		shader, ok := assembleStage(ctx, lp, stage, compiler)
		if !ok {
			return false
		}
		if shader == nil {
			continue
		}
		prog := cloneProgram(shader.Program)
		if prog == nil {
			continue
		}
		if stage == StageGeometry {
			prog.Geometry = lp.Geometry
		}
		clones[stage] = prog
	}

	lp.VertexProgram = clones[StageVertex]
	lp.GeometryProgram = clones[StageGeometry]
	lp.FragmentProgram = clones[StageFragment]

	for _, stage := range stages {
		prog := clones[stage]
		if prog == nil {
			continue
		}
		if !linkVaryings(lp, prog) {
			return false
		}
		if !linkUniforms(lp, prog) {
			return false
		}
		if stage == StageVertex {
			if !linkAttributes(lp, prog) {
				return false
			}
		}
	}

	for _, stage := range stages {
		prog := clones[stage]
		if prog == nil {
			continue
		}
		analyzeProgram(prog, lp.Limits)
	}

	return validateProgram(lp, driver)
}
