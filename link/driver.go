// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// Driver is the back-end graphics driver consumed by the driver notifier
// (§4.10). It is the last external collaborator in the pipeline: once a
// stage's linked Program passes validation it is submitted here for
// acceptance. Driver never mutates program; it returns whether the driver
// accepted it.
type Driver interface {
	NotifyLinkedProgram(stage ShaderStage, program *Program) (accepted bool)
}

// notifyDriver runs the driver notifier (§4.10). Each present stage is
// submitted to its own flag. The design notes flag a known bug in the
// original source where the vertex and fragment notification results are
// cross-assigned; this implementation deliberately does not reproduce
// that swap.
func notifyDriver(lp *LinkedProgram, driver Driver) {
	vertNotify := true
	geomNotify := true
	fragNotify := true

	if lp.VertexProgram != nil {
		vertNotify = driver.NotifyLinkedProgram(StageVertex, lp.VertexProgram)
	}
	if lp.GeometryProgram != nil {
		geomNotify = driver.NotifyLinkedProgram(StageGeometry, lp.GeometryProgram)
	}
	if lp.FragmentProgram != nil {
		fragNotify = driver.NotifyLinkedProgram(StageFragment, lp.FragmentProgram)
	}

	if !vertNotify || !geomNotify || !fragNotify {
		if lp.InfoLog == "" {
			linkError(lp, "Vertex, geometry and/or fragment program rejected by driver")
		}
		lp.LinkStatus = false
		return
	}
	lp.LinkStatus = lp.VertexProgram != nil || lp.FragmentProgram != nil
}
