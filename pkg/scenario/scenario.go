package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/inertia/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted simulation of one blend node.
type Scenario struct {
	Name              string                    `yaml:"name" json:"name"`
	Node              string                    `yaml:"node" json:"node"`
	FrameRate         float64                   `yaml:"frame_rate" json:"frame_rate"`
	Duration          float64                   `yaml:"duration" json:"duration"`
	BlendTime         float64                   `yaml:"blend_time" json:"blend_time"`
	ResetOnActivation bool                      `yaml:"reset_on_activation" json:"reset_on_activation"`
	Initial           domain.SourceID           `yaml:"initial" json:"initial"`
	Bones             []string                  `yaml:"bones" json:"bones"`
	Sources           map[string]map[string]any `yaml:"sources" json:"sources"`
	Schedule          []Event                   `yaml:"schedule" json:"schedule"`
}

// Event changes the node inputs at a point in simulated time.
type Event struct {
	At        float64         `yaml:"at" json:"at"`
	Select    domain.SourceID `yaml:"select" json:"select"`
	BlendTime *float64        `yaml:"blend_time,omitempty" json:"blend_time,omitempty"`
}

// Load reads a scenario file (YAML or JSON) and fills in defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario. ext selects the format: ".json" for JSON, anything else for YAML.
func Parse(data []byte, ext string) (*Scenario, error) {
	var sc Scenario

	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario yaml: %w", err)
		}
	}

	sc.applyDefaults()
	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if sc.Node == "" {
		sc.Node = "inertial_blend"
	}
	if sc.FrameRate == 0 {
		sc.FrameRate = 60
	}
	if sc.BlendTime == 0 {
		sc.BlendTime = domain.DefaultBlendTime
	}
	if sc.Initial == "" {
		sc.Initial = domain.SourceA
	}
}

// DeltaSeconds returns the fixed frame step.
func (sc *Scenario) DeltaSeconds() float64 {
	return 1 / sc.FrameRate
}

// Frames returns the number of simulated frames.
func (sc *Scenario) Frames() int {
	return int(sc.Duration*sc.FrameRate + 0.5)
}

// BoneMapping builds the bone mapping declared by the scenario.
func (sc *Scenario) BoneMapping() *domain.BoneMapping {
	return domain.NewBoneMapping(sc.Bones...)
}
