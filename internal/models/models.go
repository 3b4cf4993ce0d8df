package models

// Scene is the exported form of a built rig scene
type Scene struct {
	Unit     string     `yaml:"unit"`
	Metadata []Metadata `yaml:"metadata,omitempty"`
	Nodes    []Node     `yaml:"nodes"`
}

type Metadata struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Node is one scene node. Translate, Rotate and JointOrient are local
// channels, WorldPosition and Transform are world space.
type Node struct {
	Name          string     `yaml:"name"`
	Type          string     `yaml:"type"`
	Parent        string     `yaml:"parent,omitempty"`
	Translate     [3]float64 `yaml:"translate,flow"`
	Rotate        [3]float64 `yaml:"rotate,flow"`
	JointOrient   [3]float64 `yaml:"joint_orient,flow"`
	WorldPosition [3]float64 `yaml:"world_position,flow"`
	Transform     string     `yaml:"transform"`
	Locked        []string   `yaml:"locked,omitempty,flow"`
	Hidden        []string   `yaml:"hidden,omitempty,flow"`
}

// Rig is a rig description file
type Rig struct {
	Precision *int        `yaml:"precision,omitempty"`
	Export    string      `yaml:"export,omitempty"`
	Chains    []ChainSpec `yaml:"chains"`
}

// ChainSpec describes one joint chain of a rig
type ChainSpec struct {
	Name           string      `yaml:"name"`
	Side           string      `yaml:"side"`
	Start          *int        `yaml:"start,omitempty"`
	Mode           string      `yaml:"mode"`
	Positions      [][]float64 `yaml:"positions"`
	Orientations   [][]float64 `yaml:"orientations,omitempty"`
	Aim            string      `yaml:"aim,omitempty"`
	Twist          string      `yaml:"twist,omitempty"`
	TwistVector    []float64   `yaml:"twist_vector,omitempty"`
	SkipLast       bool        `yaml:"skip_last,omitempty"`
	ZeroOrientLast bool        `yaml:"zero_orient_last,omitempty"`
	ZeroGroup      bool        `yaml:"zero_group,omitempty"`
	Lock           []string    `yaml:"lock,omitempty"`
	Unlock         []string    `yaml:"unlock,omitempty"`
	Parent         string      `yaml:"parent,omitempty"`
}

// StartIndex returns the first joint number, 1 when not set.
func (c ChainSpec) StartIndex() int {
	if c.Start == nil {
		return 1
	}
	return *c.Start
}
