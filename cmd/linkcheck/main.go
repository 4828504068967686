// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command linkcheck is a small diagnostic tool that exercises the link
// package end-to-end without a real GLSL front-end. It reads a yaml
// program description — attached shader sources per stage, an optional
// resource-limits override, pre-link attribute bindings, and requested
// transform feedback varyings — runs it through link.Link using a stub
// compiler that treats every attached source as already compiled, and
// prints the resulting InfoLog, LinkStatus, and linked attribute table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/gazed/shaderlink/link"
)

// programConfig mirrors the yaml program description linkcheck accepts.
type programConfig struct {
	Vertex   []stageSource `yaml:"vertex"`
	Geometry []stageSource `yaml:"geometry"`
	Fragment []stageSource `yaml:"fragment"`

	ES2Target bool `yaml:"es2Target"`

	GeometryState *geometryConfig `yaml:"geometryState"`

	Limits            yaml.Node            `yaml:"limits"`
	AttributeBindings yaml.Node             `yaml:"attributeBindings"`
	TransformFeedback *transformFeedbackCfg `yaml:"transformFeedback"`
}

type stageSource struct {
	Source string `yaml:"source"`
}

type geometryConfig struct {
	InputPrimitive string `yaml:"inputPrimitive"`
	VerticesOut    int    `yaml:"verticesOut"`
}

type transformFeedbackCfg struct {
	BufferMode   string   `yaml:"bufferMode"`
	VaryingNames []string `yaml:"varyingNames"`
}

// stubProgramCompiler treats every attached shader source as if it had
// already compiled successfully, with an empty parameter/varying/attribute
// surface. It exists purely so linkcheck can drive link.Link without a
// real GLSL front-end; see the Non-goals in SPEC_FULL.md.
type stubProgramCompiler struct{}

func (stubProgramCompiler) Compile(ctx context.Context, shader *link.CompiledShader) error {
	shader.CompileStatus = true
	shader.Main = true
	shader.Program = &link.Program{Stage: shader.Stage}
	return nil
}

// acceptAllDriver accepts every stage unconditionally.
type acceptAllDriver struct{}

func (acceptAllDriver) NotifyLinkedProgram(stage link.ShaderStage, program *link.Program) bool {
	return true
}

func main() {
	path := flag.String("f", "", "path to a yaml program description")
	verbose := flag.Bool("v", false, "enable debug-level diagnostic logging")
	flag.Parse()

	if *verbose {
		link.SetLogger(log.NewWithOptions(os.Stderr, log.Options{Prefix: "linkcheck", Level: log.DebugLevel}))
	}

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: linkcheck -f program.yaml")
		os.Exit(2)
	}
	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "linkcheck:", err)
		os.Exit(1)
	}

	var cfg programConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "linkcheck:", err)
		os.Exit(1)
	}

	lp, err := buildLinkedProgram(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "linkcheck:", err)
		os.Exit(1)
	}

	ok := link.Link(context.Background(), lp, stubProgramCompiler{}, acceptAllDriver{})
	printReport(lp, ok)
	if !ok {
		os.Exit(1)
	}
}

func buildLinkedProgram(cfg programConfig) (*link.LinkedProgram, error) {
	limits := link.DefaultLimits
	if cfg.Limits.Kind != 0 {
		data, err := yaml.Marshal(cfg.Limits)
		if err != nil {
			return nil, err
		}
		limits, err = link.LoadLimits(data)
		if err != nil {
			return nil, err
		}
	}

	lp := link.NewLinkedProgram(limits)
	lp.ES2Target = cfg.ES2Target

	if cfg.AttributeBindings.Kind != 0 {
		data, err := yaml.Marshal(cfg.AttributeBindings)
		if err != nil {
			return nil, err
		}
		bindings, err := link.LoadAttributeBindings(data)
		if err != nil {
			return nil, err
		}
		lp.AttributeBindings = bindings
	}

	if cfg.GeometryState != nil {
		lp.Geometry = &link.GeometryState{
			InputPrimitive: parseInputPrimitive(cfg.GeometryState.InputPrimitive),
			VerticesOut:    cfg.GeometryState.VerticesOut,
		}
	}

	if cfg.TransformFeedback != nil {
		mode := link.TFInterleaved
		if cfg.TransformFeedback.BufferMode == "separate" {
			mode = link.TFSeparate
		}
		lp.TransformFeedback = link.TransformFeedback{
			VaryingNames: cfg.TransformFeedback.VaryingNames,
			BufferMode:   mode,
		}
	}

	for _, s := range cfg.Vertex {
		lp.Attach(link.StageVertex, &link.CompiledShader{Source: s.Source})
	}
	for _, s := range cfg.Geometry {
		lp.Attach(link.StageGeometry, &link.CompiledShader{Source: s.Source})
	}
	for _, s := range cfg.Fragment {
		lp.Attach(link.StageFragment, &link.CompiledShader{Source: s.Source})
	}
	return lp, nil
}

func parseInputPrimitive(name string) link.InputPrimitive {
	switch name {
	case "lines":
		return link.PrimLines
	case "triangles":
		return link.PrimTriangles
	case "linesAdjacency":
		return link.PrimLinesAdjacency
	case "trianglesAdjacency":
		return link.PrimTrianglesAdjacency
	default:
		return link.PrimPoints
	}
}

func printReport(lp *link.LinkedProgram, ok bool) {
	fmt.Printf("LinkStatus: %v\n", ok)
	if lp.InfoLog != "" {
		fmt.Printf("InfoLog: %s\n", lp.InfoLog)
	}
	if !ok {
		return
	}
	fmt.Println("Attributes:")
	for i := 0; i < lp.Attributes.Len(); i++ {
		a := lp.Attributes.At(i)
		slot := float32(-1)
		if len(a.InitialValues) > 0 {
			slot = a.InitialValues[0]
		}
		fmt.Printf("  %-20s slot=%v\n", a.Name, slot)
	}
	fmt.Println("Varying:")
	for i := 0; i < lp.Varying.Len(); i++ {
		v := lp.Varying.At(i)
		fmt.Printf("  %-20s size=%d\n", v.Name, v.Size)
	}
	fmt.Println("Uniforms:")
	for _, u := range lp.Uniforms {
		fmt.Printf("  %-20s vert=%d geom=%d frag=%d\n", u.Name,
			u.StageSlot[link.StageVertex], u.StageSlot[link.StageGeometry], u.StageSlot[link.StageFragment])
	}
}
