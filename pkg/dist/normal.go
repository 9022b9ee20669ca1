package dist

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the normal distribution with mean μ and standard deviation σ.
type Normal struct {
	mean   float64
	stdDev float64
	dist   distuv.Normal
}

// NewNormal validates the parameters and builds the sampler once.
// stdDev must be strictly positive.
func NewNormal(mean, stdDev float64) (*Normal, error) {
	if err := checkFinite("mean", mean); err != nil {
		return nil, err
	}
	if err := checkFinite("std_dev", stdDev); err != nil {
		return nil, err
	}
	if stdDev <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "std_dev must be greater than 0, got %v", stdDev)
	}
	return &Normal{
		mean:   mean,
		stdDev: stdDev,
		dist:   distuv.Normal{Mu: mean, Sigma: stdDev},
	}, nil
}

func (n *Normal) Mean() float64   { return n.mean }
func (n *Normal) StdDev() float64 { return n.stdDev }

func (n *Normal) Kind() Kind        { return KindNormal }
func (n *Normal) Params() []float64 { return []float64{n.mean, n.stdDev} }
func (n *Normal) Record() Record    { return Record{Type: KindNormal.String(), Params: n.Params()} }

func (n *Normal) Sample(src rand.Source) (float64, error) {
	if src == nil {
		return 0, errors.Wrap(ErrSampling, "nil random source")
	}
	d := n.dist
	d.Src = src
	return checkDraw(n, d.Rand())
}

func (n *Normal) String() string {
	return fmt.Sprintf("Normal(μ=%.2f, σ=%.2f)", n.mean, n.stdDev)
}

func (n *Normal) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Record())
}

func (*Normal) sealed() {}
