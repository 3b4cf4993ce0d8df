package config

import (
	"path/filepath"
	"testing"
)

// TestAllExamplesLoadSuccessfully tests that all example rig files can be loaded and validated
func TestAllExamplesLoadSuccessfully(t *testing.T) {
	examples := []struct {
		name   string
		file   string
		chains int
	}{
		{"biped", "../../example/biped.yaml", 4},
		{"finger", "../../example/finger.yaml", 1},
	}

	loader := NewLoader()

	for _, tt := range examples {
		t.Run(tt.name, func(t *testing.T) {
			absPath, err := filepath.Abs(tt.file)
			if err != nil {
				t.Fatalf("Failed to get absolute path: %v", err)
			}

			rig, err := loader.Load(absPath)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", tt.name, err)
			}

			if len(rig.Chains) != tt.chains {
				t.Errorf("chains = %d, want %d", len(rig.Chains), tt.chains)
			}

			if _, err := loader.ConvertToChainJobs(rig); err != nil {
				t.Errorf("ConvertToChainJobs() failed for %s: %v", tt.name, err)
			}
		})
	}
}

// TestBipedExample checks the resolved settings of the biped example
func TestBipedExample(t *testing.T) {
	absPath, _ := filepath.Abs("../../example/biped.yaml")
	rig, err := NewLoader().Load(absPath)
	if err != nil {
		t.Fatalf("Failed to load biped.yaml: %v", err)
	}

	if !filepath.IsAbs(rig.Export) || filepath.Base(rig.Export) != "biped-scene.yaml" {
		t.Errorf("Export = %q, want absolute path to biped-scene.yaml", rig.Export)
	}
	if PrecisionOf(rig) != 10 {
		t.Errorf("precision = %d, want 10", PrecisionOf(rig))
	}

	arm := rig.Chains[1]
	if arm.Parent != "spine_M_jnt_03" || !arm.ZeroGroup {
		t.Errorf("arm parent = %q zero group = %v", arm.Parent, arm.ZeroGroup)
	}
}
