// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "fmt"

// TFBufferMode selects how transform-feedback varyings are packed into
// capture buffers.
type TFBufferMode uint8

const (
	TFInterleaved TFBufferMode = iota
	TFSeparate
)

// TransformFeedback describes the set of varyings an application asked to
// capture, supplied alongside the three shader objects being linked.
type TransformFeedback struct {
	VaryingNames []string
	BufferMode   TFBufferMode
}

// resolveTransformFeedback runs the transform-feedback resolver: for every
// requested varying name it locates the merged varying entry the vertex
// (or, for gl_Position and friends, implicitly declared) stage produces,
// rejects unknown or duplicated names, and checks the total captured
// component count against whichever of the two related resource limits
// applies to the requested buffer mode. A program with no transform
// feedback varyings requested is trivially valid.
func resolveTransformFeedback(lp *LinkedProgram) bool {
	if lp.VertexProgram != nil {
		appendBuiltinVaryings(lp, lp.VertexProgram)
	}
	if lp.GeometryProgram != nil {
		appendBuiltinVaryings(lp, lp.GeometryProgram)
	}

	if len(lp.TransformFeedback.VaryingNames) == 0 {
		return true
	}
	if lp.VertexProgram == nil {
		linkError(lp, "transform feedback requires a vertex shader")
		return false
	}

	seen := map[int]bool{}
	total := 0
	for _, name := range lp.TransformFeedback.VaryingNames {
		i := lp.Varying.Find(name)
		if i < 0 {
			linkError(lp, fmt.Sprintf("vertex shader does not emit %s", name))
			return false
		}
		if seen[i] {
			linkError(lp, fmt.Sprintf("duplicated transform feedback varying name: %s", name))
			return false
		}
		seen[i] = true

		p := lp.Varying.At(i)
		n := p.ArrayLen
		if n < 1 {
			n = 1
		}
		total += componentSize(p.DataType) * n
	}

	limit := lp.Limits.MaxTransformFeedbackSeparateComponents
	if lp.TransformFeedback.BufferMode == TFInterleaved {
		limit = lp.Limits.MaxTransformFeedbackInterleavedComponents
	}
	if total > limit {
		linkError(lp, fmt.Sprintf("Too many feedback components: %d, max is %d", total, limit))
		return false
	}
	return true
}

// appendBuiltinVaryings registers the built-in varyings (gl_Position and
// the rest of the fixed-function result set) that prog's OutputsWritten
// mask says it writes, so they can be named as transform-feedback capture
// targets even though no ordinary varying declaration produced them.
// Append is idempotent, so running this once per stage that feeds the
// varying interface is safe.
func appendBuiltinVaryings(lp *LinkedProgram, prog *Program) {
	for bit := 0; bit < 64; bit++ {
		if prog.OutputsWritten&(1<<uint(bit)) == 0 {
			continue
		}
		name, ok := builtinVaryingName(bit)
		if !ok {
			continue
		}
		lp.Varying.Append(Parameter{
			Name:     name,
			Kind:     KindVarying,
			Size:     4,
			DataType: TypeVec4,
		})
	}
}
