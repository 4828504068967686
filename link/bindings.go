// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AttributeBindings are the user's pre-link generic vertex attribute slot
// requests (§4.5), keyed by attribute name. A real application supplies
// these via a bind-before-link API call; LoadAttributeBindings exists so
// cmd/linkcheck has a concrete, file-based source for them.
type AttributeBindings map[string]uint32

// attributeBindingEntry mirrors one yaml list entry so bindings can be
// authored in a stable order in source control instead of as an unordered
// map literal.
type attributeBindingEntry struct {
	Name string `yaml:"name"`
	Slot uint32 `yaml:"slot"`
}

// LoadAttributeBindings decodes a yaml list of {name, slot} pairs.
func LoadAttributeBindings(data []byte) (AttributeBindings, error) {
	bindings := AttributeBindings{}
	if len(data) == 0 {
		return bindings, nil
	}
	var entries []attributeBindingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("LoadAttributeBindings: yaml %w", err)
	}
	for _, e := range entries {
		bindings[e.Name] = e.Slot
	}
	return bindings, nil
}
