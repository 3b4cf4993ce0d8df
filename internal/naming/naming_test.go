package naming

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		parts   Parts
		want    string
		wantErr error
	}{
		{
			name:  "full",
			parts: Parts{Base: "foot", Side: "R", FrontOrHind: "front", IkOrFk: "ik", Suffix1: "config", Suffix: "ctrl", Num: 2},
			want:  "foot_R_front_ik_config_ctrl_02",
		},
		{"ik number", Parts{Base: "featherE", Side: "R", IkOrFk: "fk", Suffix: "ctrl", Num: 1}, "featherE_R_fk_ctrl_01", nil},
		{"skin joint", Parts{Base: "ear", Side: "L", Suffix: "skinJnt", Num: 2}, "ear_L_skinJnt_02", nil},
		{"no number", Parts{Base: "leg", Side: "L", FrontOrHind: "front", Suffix1: "config", Suffix: "ctrl"}, "leg_L_front_config_ctrl", nil},
		{"wide number", Parts{Base: "spine", Side: "M", Suffix: "jnt", Num: 123}, "spine_M_jnt_123", nil},
		{"bad side", Parts{Base: "arm", Side: "X", Suffix: "jnt"}, "", ErrInvalidSide},
		{"bad suffix", Parts{Base: "arm", Side: "L", Suffix: "bone"}, "", ErrInvalidSuffix},
		{"bad optional suffix", Parts{Base: "arm", Side: "L", IkOrFk: "both", Suffix: "jnt"}, "", ErrInvalidSuffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.parts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func existsIn(names ...string) func(string) bool {
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		existing []string
		want     string
	}{
		{"free", "arm_L_jnt_01", nil, "arm_L_jnt_01"},
		{"increment tail", "arm_L_jnt_01", []string{"arm_L_jnt_01"}, "arm_L_jnt_02"},
		{"skip taken", "arm_L_jnt_01", []string{"arm_L_jnt_01", "arm_L_jnt_02", "arm_L_jnt_03"}, "arm_L_jnt_04"},
		{"append number", "arm_L_jnt", []string{"arm_L_jnt"}, "arm_L_jnt_01"},
		{"append then increment", "arm_L_jnt", []string{"arm_L_jnt", "arm_L_jnt_01"}, "arm_L_jnt_02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unique(tt.in, existsIn(tt.existing...))
			if err != nil {
				t.Fatalf("Unique() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Unique() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueExhausted(t *testing.T) {
	_, err := Unique("arm_L_jnt_01", func(string) bool { return true })
	if !errors.Is(err, ErrNameExhausted) {
		t.Errorf("Unique() error = %v, want ErrNameExhausted", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"arm_L_jnt_01", false},
		{"arm_L_jnt", false},
		{"arm_L_jnt_1", true},
		{"arm_L_jnt_001", true},
		{"arm_L_bone", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestGenerator(t *testing.T) {
	taken := map[string]bool{"arm_L_jnt_01": true}
	g := NewGenerator(func(name string) bool { return taken[name] })

	got, err := g.UniqueName("arm", "L", "jnt", 1)
	if err != nil {
		t.Fatalf("UniqueName() unexpected error: %v", err)
	}
	if got != "arm_L_jnt_02" {
		t.Errorf("UniqueName() = %q, want arm_L_jnt_02", got)
	}
	if _, err := g.UniqueName("arm", "left", "jnt", 1); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("UniqueName(bad side) error = %v, want ErrInvalidSide", err)
	}
}

func TestZeroGroupName(t *testing.T) {
	got, err := ZeroGroupName("arm", "L")
	if err != nil {
		t.Fatal(err)
	}
	if got != "armZero_L_grp" {
		t.Errorf("ZeroGroupName() = %q, want armZero_L_grp", got)
	}
}
