package config

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named set of rules.
type Preset struct {
	Name        string
	Description string
	Rules       RulesConfig
}

// Presets lists the built-in rule sets.
// Spawn4 probability and target grow together to keep larger boards challenging.
var Presets = []Preset{
	{Name: "classic", Description: "4x4 board, reach 2048", Rules: RulesConfig{Size: 4, WinTarget: 2048, Spawn4Prob: 0.10}},
	{Name: "mini", Description: "3x3 board, reach 256", Rules: RulesConfig{Size: 3, WinTarget: 256, Spawn4Prob: 0.10}},
	{Name: "large", Description: "5x5 board, reach 4096", Rules: RulesConfig{Size: 5, WinTarget: 4096, Spawn4Prob: 0.10}},
	{Name: "hard", Description: "4x4 board, more 4s", Rules: RulesConfig{Size: 4, WinTarget: 2048, Spawn4Prob: 0.25}},
	{Name: "marathon", Description: "6x6 board, reach 8192", Rules: RulesConfig{Size: 6, WinTarget: 8192, Spawn4Prob: 0.10}},
}

// PresetByName returns the preset with the given name.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}

// PresetNames returns the names of all presets, sorted.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the rules of cfg with the named preset.
// An empty name leaves cfg unchanged.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, err := PresetByName(name)
	if err != nil {
		return err
	}
	cfg.Rules = p.Rules
	return nil
}
