package dist

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [min, max).
type Uniform struct {
	min  float64
	max  float64
	dist distuv.Uniform
}

// NewUniform validates min < max and builds the sampler once.
// Equal bounds are rejected.
func NewUniform(min, max float64) (*Uniform, error) {
	if err := checkFinite("min", min); err != nil {
		return nil, err
	}
	if err := checkFinite("max", max); err != nil {
		return nil, err
	}
	if min >= max {
		return nil, errors.Wrapf(ErrInvalidParameter, "min must be less than max, got min=%v max=%v", min, max)
	}
	return &Uniform{
		min:  min,
		max:  max,
		dist: distuv.Uniform{Min: min, Max: max},
	}, nil
}

func (u *Uniform) Min() float64 { return u.min }
func (u *Uniform) Max() float64 { return u.max }

func (u *Uniform) Kind() Kind        { return KindUniform }
func (u *Uniform) Params() []float64 { return []float64{u.min, u.max} }
func (u *Uniform) Record() Record    { return Record{Type: KindUniform.String(), Params: u.Params()} }

func (u *Uniform) Sample(src rand.Source) (float64, error) {
	if src == nil {
		return 0, errors.Wrap(ErrSampling, "nil random source")
	}
	d := u.dist
	d.Src = src
	x, err := checkDraw(u, d.Rand())
	if err != nil {
		return 0, err
	}
	// min + f*(max-min) can round up to max.
	if x >= u.max {
		x = math.Nextafter(u.max, math.Inf(-1))
	}
	return x, nil
}

func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform(min=%.2f, max=%.2f)", u.min, u.max)
}

func (u *Uniform) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Record())
}

func (*Uniform) sealed() {}
