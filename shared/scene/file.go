package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/magnet"
)

// magnetStanza is one magnet entry in a scene file.
// Width, height, and radius are full dimensions; angles are in degrees.
type magnetStanza struct {
	Kind      string     `yaml:"kind"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Radius    float64    `yaml:"radius"`
	Center    [2]float64 `yaml:"center"`
	Rotation  float64    `yaml:"rotation"`
	Remanence float64    `yaml:"remanence"`
	Angle     float64    `yaml:"angle"`
}

// sceneFile is the top-level structure of a YAML scene file.
type sceneFile struct {
	Magnets []magnetStanza `yaml:"magnets"`
}

// FromBytes assembles a scene from YAML data.
func FromBytes(data []byte) (*Scene, error) {
	var doc sceneFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := New()
	for i, stanza := range doc.Magnets {
		src, err := stanza.build()
		if err != nil {
			return nil, fmt.Errorf("magnet %d: %w", i, err)
		}
		s.Add(src)
	}
	return s, nil
}

// FromFile assembles a scene from a YAML file at path.
func FromFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	return FromBytes(data)
}

// build constructs the field source a stanza describes.
func (m magnetStanza) build() (magnet.Spatial2, error) {
	center := geom.Vector2{X: m.Center[0], Y: m.Center[1]}
	switch m.Kind {
	case "rectangle":
		return magnet.NewRectangle(m.Width, m.Height, center, m.Rotation, m.Remanence, m.Angle)
	case "circle":
		return magnet.NewCircle(m.Radius, center, m.Remanence, m.Angle)
	default:
		return nil, fmt.Errorf("unknown magnet kind %q", m.Kind)
	}
}
