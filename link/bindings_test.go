// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import "testing"

func TestLoadAttributeBindings(t *testing.T) {
	yamlDoc := []byte(`
- name: aUv
  slot: 3
- name: aColor
  slot: 1
`)
	bindings, err := LoadAttributeBindings(yamlDoc)
	if err != nil {
		t.Fatalf("LoadAttributeBindings error: %v", err)
	}
	if bindings["aUv"] != 3 {
		t.Errorf("aUv slot = %d, want 3", bindings["aUv"])
	}
	if bindings["aColor"] != 1 {
		t.Errorf("aColor slot = %d, want 1", bindings["aColor"])
	}
}

func TestLoadAttributeBindingsEmpty(t *testing.T) {
	bindings, err := LoadAttributeBindings(nil)
	if err != nil {
		t.Fatalf("LoadAttributeBindings(nil) error: %v", err)
	}
	if len(bindings) != 0 {
		t.Errorf("len(bindings) = %d, want 0", len(bindings))
	}
}
