// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// validateProgram runs the validator: an ordered sequence of link-time
// language-rule checks, each fatal on the first violation. It assumes the
// post-link analyzer has already run on every present stage.
func validateProgram(lp *LinkedProgram, driver Driver) bool {
	for _, shaders := range lp.Attached {
		for _, sh := range shaders {
			if !sh.CompileStatus {
				linkError(lp, "linking with uncompiled shader")
				return false
			}
		}
	}

	if lp.ES2Target && (lp.VertexProgram == nil || lp.FragmentProgram == nil) {
		linkError(lp, "ES2 programs require both a vertex and a fragment shader")
		return false
	}

	if lp.VertexProgram != nil && lp.VertexProgram.OutputsWritten&(1<<uint(VertResultPos)) == 0 {
		linkError(lp, "gl_Position was not written by vertex shader")
		return false
	}

	if lp.GeometryProgram != nil {
		if lp.VertexProgram == nil {
			linkError(lp, "geometry shader present without a vertex shader")
			return false
		}
		if lp.GeometryProgram.Geometry == nil || lp.GeometryProgram.Geometry.VerticesOut == 0 {
			linkError(lp, "geometry shader does not declare max_vertices")
			return false
		}
	}

	if lp.FragmentProgram != nil && lp.VertexProgram != nil {
		fragVarying := lp.FragmentProgram.InputsRead >> uint(FragAttribVar0)
		vertVarying := lp.VertexProgram.OutputsWritten >> uint(VertResultVar0)
		if fragVarying&^vertVarying != 0 {
			linkError(lp, "Fragment program using varying vars not written by vertex shader")
			return false
		}
	}

	if lp.FragmentProgram != nil {
		writesUnified := lp.FragmentProgram.OutputsWritten&(1<<uint(FragResultColor)) != 0
		writesIndexed := false
		for i := 0; i < lp.Limits.MaxDrawBuffers; i++ {
			if lp.FragmentProgram.OutputsWritten&(1<<uint(FragResultData0+i)) != 0 {
				writesIndexed = true
				break
			}
		}
		if writesUnified && writesIndexed {
			linkError(lp, "fragment shader writes both gl_FragColor and an indexed fragment data output")
			return false
		}
	}

	if !resolveTransformFeedback(lp) {
		return false
	}

	notifyDriver(lp, driver)
	return lp.LinkStatus
}
