// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "context"

// stubCompiler fails any shader it is asked to compile; used in tests
// that only exercise the "already resolved" assembler selection path, so
// the compiler should never actually be invoked.
type stubCompiler struct{ called bool }

func (c *stubCompiler) Compile(ctx context.Context, shader *CompiledShader) error {
	c.called = true
	shader.CompileStatus = false
	return nil
}

// stubDriver accepts or rejects every stage uniformly.
type stubDriver struct{ accept bool }

func (d stubDriver) NotifyLinkedProgram(stage ShaderStage, program *Program) bool {
	return d.accept
}

// resolvedShader returns an already-compiled, fully-resolved shader object
// wrapping prog, so assembleStage picks it without invoking a compiler.
func resolvedShader(stage ShaderStage, prog *Program) *CompiledShader {
	return &CompiledShader{
		Stage:         stage,
		CompileStatus: true,
		Main:          true,
		Program:       prog,
	}
}

func ins(op Opcode, dst RegisterRef, src ...RegisterRef) Instruction {
	i := Instruction{Opcode: op, Dst: dst, NumSrc: len(src)}
	copy(i.Src[:], src)
	return i
}
