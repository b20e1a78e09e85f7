// SPDX-License-Identifier: MPL-2.0

package toolkit

import (
	"maps"
	"testing"
)

func TestMergeDefaultsOverrideWins(t *testing.T) {
	merged := MergeDefaults(
		map[string]any{"color": "blue", "size": 3},
		map[string]any{"color": "red"},
	)

	if merged["color"] != "red" {
		t.Errorf("expected the override to win, got %v", merged["color"])
	}
	if merged["size"] != 3 {
		t.Errorf("expected non-conflicting defaults to survive, got %v", merged["size"])
	}
}

func TestMergeDefaultsWithoutOverrides(t *testing.T) {
	merged := MergeDefaults(map[string]any{"color": "blue"}, nil)
	if merged["color"] != "blue" {
		t.Errorf("expected the plugin defaults, got %v", merged["color"])
	}
}

func TestMergeDefaultsIsIdempotent(t *testing.T) {
	defaults := map[string]any{"color": "blue", "retries": 2}
	overrides := map[string]any{"color": "red"}

	first := MergeDefaults(defaults, overrides)
	second := MergeDefaults(defaults, overrides)

	if !maps.Equal(first, second) {
		t.Errorf("merging the same inputs twice diverged: %v vs %v", first, second)
	}
}

func TestMergeDefaultsNeverReturnsNil(t *testing.T) {
	if MergeDefaults(nil, nil) == nil {
		t.Error("a command must always observe some configuration object")
	}
}

func TestMergeDefaultsDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{"color": "blue"}
	overrides := map[string]any{"color": "red"}

	_ = MergeDefaults(defaults, overrides)

	if defaults["color"] != "blue" {
		t.Error("plugin defaults were mutated by the merge")
	}
}

func TestEffectiveConfigClonesBase(t *testing.T) {
	base := map[string]any{"shared": true}
	r := New("gear", WithConfig(base))
	p := &Plugin{Name: "args", Defaults: map[string]any{"color": "blue"}}

	cfg := r.effectiveConfig(p)
	cfg["shared"] = false
	cfg["extra"] = 1

	if base["shared"] != true {
		t.Error("the runtime's base config was mutated through the effective config")
	}
	if _, ok := base["extra"]; ok {
		t.Error("new keys leaked into the runtime's base config")
	}
}

func TestEffectiveConfigInstallsPluginSection(t *testing.T) {
	r := New("gear", WithConfig(map[string]any{"shared": true}))
	r.SetDefaults("args", map[string]any{"color": "red"})
	p := &Plugin{Name: "args", Defaults: map[string]any{"color": "blue", "size": 1}}

	cfg := r.effectiveConfig(p)

	section, ok := cfg["args"].(map[string]any)
	if !ok {
		t.Fatalf("expected a config section for the plugin, got %T", cfg["args"])
	}
	if section["color"] != "red" || section["size"] != 1 {
		t.Errorf("unexpected merged section: %v", section)
	}
	if cfg["shared"] != true {
		t.Error("base configuration keys must survive the clone")
	}
}
