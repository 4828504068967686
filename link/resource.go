// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Limits are the resource constants a real driver/runtime would expose
// (§6, "resource constants"). DefaultLimits follows common desktop-GL
// minimums; callers targeting a specific driver should load their own via
// LoadLimits.
type Limits struct {
	MaxVarying                                int
	MaxVertexGenericAttribs                    int
	MaxTextureImageUnits                       int
	MaxTransformFeedbackInterleavedComponents  int
	MaxTransformFeedbackSeparateComponents     int
	MaxDrawBuffers                             int
	MaxTextureCoordUnits                       int
}

// DefaultLimits mirrors the GL 3.x core minimums commonly exposed by
// desktop drivers.
var DefaultLimits = Limits{
	MaxVarying:                               60,
	MaxVertexGenericAttribs:                  16,
	MaxTextureImageUnits:                     16,
	MaxTransformFeedbackInterleavedComponents: 64,
	MaxTransformFeedbackSeparateComponents:    4,
	MaxDrawBuffers:                            8,
	MaxTextureCoordUnits:                      8,
}

// limitsConfig mirrors load/shd.go's yaml-description pattern: resource
// limits are the one piece of genuinely external configuration this
// package needs, so they are described the same way the teacher describes
// shader metadata, in YAML.
type limitsConfig struct {
	MaxVarying                                *int `yaml:"maxVarying"`
	MaxVertexGenericAttribs                   *int `yaml:"maxVertexGenericAttribs"`
	MaxTextureImageUnits                      *int `yaml:"maxTextureImageUnits"`
	MaxTransformFeedbackInterleavedComponents *int `yaml:"maxTransformFeedbackInterleavedComponents"`
	MaxTransformFeedbackSeparateComponents    *int `yaml:"maxTransformFeedbackSeparateComponents"`
	MaxDrawBuffers                            *int `yaml:"maxDrawBuffers"`
	MaxTextureCoordUnits                      *int `yaml:"maxTextureCoordUnits"`
}

// LoadLimits decodes a yaml resource-limits document, starting from
// DefaultLimits and overriding only the fields present in data.
func LoadLimits(data []byte) (Limits, error) {
	limits := DefaultLimits
	if len(data) == 0 {
		return limits, nil
	}
	var cfg limitsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return limits, fmt.Errorf("LoadLimits: yaml %w", err)
	}
	if cfg.MaxVarying != nil {
		limits.MaxVarying = *cfg.MaxVarying
	}
	if cfg.MaxVertexGenericAttribs != nil {
		limits.MaxVertexGenericAttribs = *cfg.MaxVertexGenericAttribs
	}
	if cfg.MaxTextureImageUnits != nil {
		limits.MaxTextureImageUnits = *cfg.MaxTextureImageUnits
	}
	if cfg.MaxTransformFeedbackInterleavedComponents != nil {
		limits.MaxTransformFeedbackInterleavedComponents = *cfg.MaxTransformFeedbackInterleavedComponents
	}
	if cfg.MaxTransformFeedbackSeparateComponents != nil {
		limits.MaxTransformFeedbackSeparateComponents = *cfg.MaxTransformFeedbackSeparateComponents
	}
	if cfg.MaxDrawBuffers != nil {
		limits.MaxDrawBuffers = *cfg.MaxDrawBuffers
	}
	if cfg.MaxTextureCoordUnits != nil {
		limits.MaxTextureCoordUnits = *cfg.MaxTextureCoordUnits
	}
	return limits, nil
}
