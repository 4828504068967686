// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"bytes"
	"context"
	"fmt"
)

// versionToken is the literal directive substring sanitizeVersion looks
// for; only this exact token is recognized, per §6.
const versionToken = "#version"

// assembleStage runs the source assembler (§4.1) for one stage. It
// returns (nil, true) if the program has no shader objects attached for
// stage (the "None" result). It returns (nil, false) with lp.InfoLog set
// if concatenated recompilation still fails. Otherwise it returns the
// single shader object to link against.
func assembleStage(ctx context.Context, lp *LinkedProgram, stage ShaderStage, compiler Compiler) (*CompiledShader, bool) {
	attached := lp.Attached[stage]
	if len(attached) == 0 {
		return nil, true
	}

	// Selection rule: first already-Main, fully-resolved shader wins.
	for _, sh := range attached {
		if sh.Main && !sh.UnresolvedRefs {
			return sh, true
		}
	}

	var buf bytes.Buffer
	if stage == StageGeometry && lp.Geometry != nil {
		n, known := lp.Geometry.InputPrimitive.verticesIn()
		if !known {
			diagLogger.Warn("unrecognized geometry input primitive, defaulting gl_VerticesIn",
				"primitive", lp.Geometry.InputPrimitive, "default", n)
		}
		fmt.Fprintf(&buf, "const int gl_VerticesIn = %d;\n", n)
	}
	for _, sh := range attached {
		buf.WriteString(sh.Source)
	}

	source := sanitizeVersion(buf.String()) + "\x00"
	assembled := &CompiledShader{
		Stage:   stage,
		Source:  source,
		Pragmas: attached[0].Pragmas,
	}
	if err := compiler.Compile(ctx, assembled); err != nil {
		diagLogger.Debug("compile returned error", "stage", stage, "err", err)
	}
	if !assembled.CompileStatus || !assembled.Main || assembled.UnresolvedRefs {
		linkError(lp, "Unresolved symbols")
		return nil, false
	}
	return assembled, true
}

// sanitizeVersion disables every occurrence of the literal #version
// directive token after the first by overwriting its first two characters
// with "//", without shifting any other byte offset (§6, P9).
func sanitizeVersion(source string) string {
	b := []byte(source)
	first := true
	offset := 0
	for {
		rel := bytes.Index(b[offset:], []byte(versionToken))
		if rel < 0 {
			break
		}
		pos := offset + rel
		if !first {
			b[pos] = '/'
			b[pos+1] = '/'
		}
		first = false
		offset = pos + len(versionToken)
	}
	return string(b)
}
