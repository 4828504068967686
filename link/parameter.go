// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"golang.org/x/text/unicode/norm"
)

// ParameterKind identifies what role a Parameter plays in its stage's
// source: a regular uniform, a sampler (a uniform naming a texture image
// unit), a state variable, a compile-time constant, a generic vertex
// attribute, or a transient inter-stage varying.
type ParameterKind uint8

const (
	KindUniform ParameterKind = iota
	KindSampler
	KindStateVar
	KindConstant
	KindAttribute
	KindVarying
)

// ParameterFlag is a bitset of qualifier flags recorded on a Parameter.
type ParameterFlag uint32

const (
	FlagCentroid ParameterFlag = 1 << iota
	FlagInvariant
)

// DataType is the shading-language type of a Parameter. Only the
// component count (Size) is needed to reconcile linking; the type itself
// is carried for diagnostics and for the transform-feedback component
// count in §4.9.
type DataType uint8

const (
	TypeFloat DataType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeSamplerCube
)

// componentSize returns the number of float components one array element
// of t occupies, used by the transform-feedback component budget.
func componentSize(t DataType) int {
	switch t {
	case TypeFloat:
		return 1
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	default:
		return 4
	}
}

// Parameter describes one named value a shader reads or writes: a uniform,
// sampler, state variable, constant, attribute, or varying.
type Parameter struct {
	Name     string
	Kind     ParameterKind
	DataType DataType
	Size     int // components per element; >4 or ArrayLen>1 spans multiple slots
	ArrayLen int // 0 or 1 for non-arrays
	Flags    ParameterFlag

	InitialValues []float32 // initial/constant values, samplers store slot in [0]
	StateIndexes  []int32

	Used        bool // true if the compiler determined this parameter is read
	Initialized bool
}

// Slots returns how many successive 4-component register slots this
// parameter occupies, per §4.3 rule 6.
func (p *Parameter) Slots() int {
	n := p.ArrayLen
	if n < 1 {
		n = 1
	}
	perElem := (p.Size + 3) / 4
	if perElem < 1 {
		perElem = 1
	}
	return n * perElem
}

// ParameterList is an ordered, by-name-indexed collection of Parameters.
// Names are compared in Unicode NFC form so that two independently
// compiled shader objects that spell an identifier identically but differ
// in combining-character representation still reconcile, a hazard the
// source assembler's raw-text concatenation (§4.1) can introduce.
type ParameterList struct {
	params []Parameter
	index  map[string]int // normalized name -> index into params
}

// NewParameterList returns an empty list ready for use.
func NewParameterList() *ParameterList {
	return &ParameterList{index: map[string]int{}}
}

func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// Find returns the index of the parameter named name, or -1.
func (pl *ParameterList) Find(name string) int {
	if pl == nil {
		return -1
	}
	if i, ok := pl.index[normalizeName(name)]; ok {
		return i
	}
	return -1
}

// At returns a pointer to the parameter at index i.
func (pl *ParameterList) At(i int) *Parameter { return &pl.params[i] }

// Len returns the number of parameters in the list.
func (pl *ParameterList) Len() int { return len(pl.params) }

// Append adds p to the list and returns its index. Per §3, append is
// idempotent per (name, kind) within one list instance: appending a
// parameter whose normalized name and kind already exist returns the
// existing index instead of inserting a duplicate.
func (pl *ParameterList) Append(p Parameter) int {
	key := normalizeName(p.Name)
	if i, ok := pl.index[key]; ok && pl.params[i].Kind == p.Kind {
		return i
	}
	i := len(pl.params)
	pl.params = append(pl.params, p)
	pl.index[key] = i
	return i
}

// Clone makes a deep copy of pl, used by the program cloner (§4.2).
func (pl *ParameterList) Clone() *ParameterList {
	if pl == nil {
		return NewParameterList()
	}
	out := &ParameterList{
		params: make([]Parameter, len(pl.params)),
		index:  make(map[string]int, len(pl.index)),
	}
	for i, p := range pl.params {
		cp := p
		cp.InitialValues = append([]float32(nil), p.InitialValues...)
		cp.StateIndexes = append([]int32(nil), p.StateIndexes...)
		out.params[i] = cp
	}
	for k, v := range pl.index {
		out.index[k] = v
	}
	return out
}
