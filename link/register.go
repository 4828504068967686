// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// RegisterFile tags which bank of the register file a RegisterRef
// addresses. Varying is transient: it only exists in per-stage compiled
// programs and is rewritten to Input or Output by the varying linker
// before any other pass sees it.
type RegisterFile uint8

const (
	FileInput RegisterFile = iota
	FileOutput
	FileVarying
	FileUniform
	FileSampler
	FileTemporary
	FileAddress
	FileConstant
	FileStateVar
)

// RegisterRef addresses one register-file slot, optionally relative. The
// geometry stage's secondary index (used to address the adjacent-vertex
// dimension of its inputs) is carried in Index2/RelAddr2/HasIndex2.
type RegisterRef struct {
	File     RegisterFile
	Index    int32
	RelAddr  bool
	HasIndex2 bool
	Index2   int32
	RelAddr2 bool
}
