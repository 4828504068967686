// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// Program is one stage's intermediate representation, as produced by the
// external compiler (see compiler.go) and, after the program cloner runs,
// as mutated in place by every subsequent linker pass. The linker only
// ever writes to a clone; the compile-time original referenced by a
// CompiledShader is never mutated.
type Program struct {
	Stage ShaderStage

	Instructions []Instruction

	Parameters *ParameterList // uniforms, samplers, state vars, constants
	Varyings   *ParameterList // transient varying declarations, linked away
	Attributes *ParameterList // vertex stage only: generic attribute declarations

	InputsRead     uint64
	OutputsWritten uint64

	// PreLinkInputsRead is a snapshot of InputsRead as the compiler
	// produced it, taken at clone time and never touched again. The
	// attribute resolver (§4.5) needs the compile-time legacy-position
	// bit after the varying linker has already cleared InputsRead for
	// recomputation (§4.7).
	PreLinkInputsRead uint64

	NumTemporaries int
	NumAddressRegs int

	SamplersUsedMask      uint64
	PerSamplerTextureTarget [64]uint32
	ShadowSamplersMask    uint64

	// InputFlags/OutputFlags record, per linked register slot past the
	// stage's varying base, the merged qualifier bits (Centroid,
	// Invariant) the varying linker computed for that slot.
	InputFlags  map[int32]ParameterFlag
	OutputFlags map[int32]ParameterFlag

	// Geometry only.
	Geometry *GeometryState
}

// newProgram returns an empty Program for the given stage with its
// parameter lists initialized.
func newProgram(stage ShaderStage) *Program {
	return &Program{
		Stage:       stage,
		Parameters:  NewParameterList(),
		Varyings:    NewParameterList(),
		Attributes:  NewParameterList(),
		InputFlags:  map[int32]ParameterFlag{},
		OutputFlags: map[int32]ParameterFlag{},
	}
}

// cloneProgram makes a deep copy of src. The program cloner (§4.2): every
// linker pass writes only to the returned copy. The clone starts with a
// reference count of one, represented simply by it being a fresh value no
// other owner holds.
func cloneProgram(src *Program) *Program {
	if src == nil {
		return nil
	}
	dst := &Program{
		Stage:          src.Stage,
		Instructions:   make([]Instruction, len(src.Instructions)),
		Parameters:     src.Parameters.Clone(),
		Varyings:       src.Varyings.Clone(),
		Attributes:     src.Attributes.Clone(),
		InputsRead:        src.InputsRead,
		OutputsWritten:    src.OutputsWritten,
		PreLinkInputsRead: src.InputsRead,
		NumTemporaries: src.NumTemporaries,
		NumAddressRegs: src.NumAddressRegs,
		SamplersUsedMask: src.SamplersUsedMask,
		ShadowSamplersMask: src.ShadowSamplersMask,
		InputFlags:  make(map[int32]ParameterFlag, len(src.InputFlags)),
		OutputFlags: make(map[int32]ParameterFlag, len(src.OutputFlags)),
	}
	copy(dst.Instructions, src.Instructions)
	dst.PerSamplerTextureTarget = src.PerSamplerTextureTarget
	for k, v := range src.InputFlags {
		dst.InputFlags[k] = v
	}
	for k, v := range src.OutputFlags {
		dst.OutputFlags[k] = v
	}
	if src.Geometry != nil {
		g := *src.Geometry
		dst.Geometry = &g
	}
	return dst
}
