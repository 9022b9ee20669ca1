package dist

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson is the Poisson distribution with rate λ. Draws are
// non-negative whole numbers returned as float64.
type Poisson struct {
	lambda float64
	dist   distuv.Poisson
}

// NewPoisson validates λ > 0 and builds the sampler once.
func NewPoisson(lambda float64) (*Poisson, error) {
	if err := checkFinite("lambda", lambda); err != nil {
		return nil, err
	}
	if lambda <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "lambda must be greater than 0, got %v", lambda)
	}
	return &Poisson{
		lambda: lambda,
		dist:   distuv.Poisson{Lambda: lambda},
	}, nil
}

func (p *Poisson) Lambda() float64 { return p.lambda }

func (p *Poisson) Kind() Kind        { return KindPoisson }
func (p *Poisson) Params() []float64 { return []float64{p.lambda} }
func (p *Poisson) Record() Record    { return Record{Type: KindPoisson.String(), Params: p.Params()} }

func (p *Poisson) Sample(src rand.Source) (float64, error) {
	if src == nil {
		return 0, errors.Wrap(ErrSampling, "nil random source")
	}
	d := p.dist
	d.Src = src
	x, err := checkDraw(p, d.Rand())
	if err != nil {
		return 0, err
	}
	if x < 0 {
		return 0, errors.Wrapf(ErrSampling, "%v produced negative count %v", p, x)
	}
	return x, nil
}

func (p *Poisson) String() string {
	return fmt.Sprintf("Poisson(λ=%.2f)", p.lambda)
}

func (p *Poisson) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

func (*Poisson) sealed() {}
