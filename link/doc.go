// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package link implements the link stage of a shading-language toolchain.
// It combines independently compiled vertex, geometry, and fragment shader
// objects into a single linked program whose instructions reference a
// unified register-file layout. The main steps involved are:
//   - Assemble each stage's final source from its attached shader objects.
//   - Clone each stage's compiled program so linking never mutates
//     compile-time artifacts.
//   - Reconcile varyings, uniforms, samplers, and generic vertex attributes
//     across stages, rewriting instruction register references as it goes.
//   - Recompute per-program usage masks and validate link-time rules.
//   - Hand each linked stage to a driver for acceptance.
//
// Package link does not compile GLSL source and does not execute a linked
// program; both are external collaborators described by the Compiler and
// Driver interfaces.
package link
