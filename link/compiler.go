// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "context"

// CompiledShader is one attached shader object: either the output of an
// earlier, successful compile (Main set, UnresolvedRefs clear, Program
// populated) or a raw source fragment awaiting (re)compilation by the
// source assembler's concatenated-source path. The compiler front-end
// that produces Program from Source is an external collaborator; this
// package never parses shading-language source itself.
type CompiledShader struct {
	Stage  ShaderStage
	Source string

	CompileStatus  bool
	Main           bool // true if this shader defines the stage's entry point
	UnresolvedRefs bool // true if symbol resolution against other stages is still needed
	Pragmas        string

	Program *Program
}

// Compiler is the external compiler front-end consumed by the source
// assembler (§4.1/§6). Compile mutates shader in place, setting
// CompileStatus, Main, UnresolvedRefs, and Program.
type Compiler interface {
	Compile(ctx context.Context, shader *CompiledShader) error
}
