package routine

import (
	"os"

	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LeaveReturn describes one outing: when the resident leaves and when they
// come back, both as seconds since midnight.
type LeaveReturn struct {
	Leave  dist.Record `yaml:"leave" json:"leave"`
	Return dist.Record `yaml:"return" json:"return"`
}

// Profile holds the distributions a resident's day is drawn from.
type Profile struct {
	WakeUp dist.Record   `yaml:"wake_up" json:"wake_up"`
	Sleep  dist.Record   `yaml:"sleep" json:"sleep"`
	Events []LeaveReturn `yaml:"events,omitempty" json:"events,omitempty"`
}

// Validate rebuilds every distribution in the profile and reports the first
// one that fails.
func (p *Profile) Validate() error {
	_, err := NewGenerator(p)
	return err
}

// ParseProfile decodes a YAML profile and validates it.
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, "cannot decode profile")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProfile reads and validates a YAML profile file.
func LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read profile")
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", filename)
	}
	return p, nil
}
