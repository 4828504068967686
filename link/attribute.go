// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

// linkAttributes runs the vertex-stage attribute resolver (§4.5). It
// reconciles user pre-link bindings with the generic attributes the
// vertex shader actually reads, auto-assigning any attribute the user did
// not bind to the lowest free slot strictly greater than zero (slot 0 is
// reserved for the legacy position attribute), and rewrites every source
// register reference touching a generic attribute to its resolved slot.
func linkAttributes(lp *LinkedProgram, prog *Program) bool {
	// Step 1: usedAttributes bitset.
	var usedAttributes uint32
	for _, slot := range lp.AttributeBindings {
		if slot < MaxGenericAttribs {
			usedAttributes |= 1 << slot
		}
	}
	if prog.PreLinkInputsRead&(1<<uint(VertAttribPos)) != 0 {
		usedAttributes |= 1 << 0
	}

	// Pre-link generic-attribute-index -> declared name, read from the
	// program's original (compiler-produced) attribute declarations.
	preLinkName := map[int32]string{}
	declared := map[string]*Parameter{}
	for i := 0; i < prog.Attributes.Len(); i++ {
		a := prog.Attributes.At(i)
		declared[normalizeName(a.Name)] = a
		if len(a.InitialValues) > 0 {
			preLinkName[int32(a.InitialValues[0])] = a.Name
		}
	}

	// Step 2.
	var attribMap [MaxGenericAttribs]int32
	for i := range attribMap {
		attribMap[i] = -1
	}

	// Step 3: walk instructions, resolving each generic attribute source
	// reference the first time its pre-link index is seen.
	var tooMany bool
	rewriteRegisters(prog.Instructions, func(ref *RegisterRef, isDst bool) {
		if isDst || tooMany {
			return
		}
		if ref.File != FileInput || ref.Index < VertAttribGeneric0 {
			return
		}
		k := ref.Index - VertAttribGeneric0
		if int(k) >= MaxGenericAttribs {
			return
		}
		if attribMap[k] == -1 {
			name := preLinkName[k]
			var slot uint32
			if bound, ok := lp.AttributeBindings[name]; ok {
				slot = bound
			} else {
				found := false
				for s := uint32(1); s < MaxGenericAttribs; s++ {
					if usedAttributes&(1<<s) == 0 {
						slot = s
						found = true
						break
					}
				}
				if !found {
					tooMany = true
					return
				}
				usedAttributes |= 1 << slot
			}
			attribMap[k] = int32(slot)

			size, dtype := 1, TypeFloat
			if a, ok := declared[normalizeName(name)]; ok {
				size, dtype = a.Size, a.DataType
			}
			lp.Attributes.Append(Parameter{
				Name:          name,
				Kind:          KindAttribute,
				Size:          size,
				DataType:      dtype,
				InitialValues: []float32{float32(slot)},
			})
		}
		ref.Index = VertAttribGeneric0 + attribMap[k]
	}, nil)
	if tooMany {
		linkError(lp, "Too many vertex attributes")
		return false
	}

	// Step 4: emit pre-defined attributes the program actually reads,
	// each distinguished from user-queryable generic bindings by slot -1.
	for bit := 0; bit < 64; bit++ {
		if prog.PreLinkInputsRead&(1<<uint(bit)) == 0 {
			continue
		}
		name, ok := builtinAttributeName(bit)
		if !ok {
			continue
		}
		lp.Attributes.Append(Parameter{
			Name:          name,
			Kind:          KindAttribute,
			InitialValues: []float32{-1},
		})
	}
	return true
}
