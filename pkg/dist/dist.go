// Package dist implements the normal, Poisson and uniform distributions
// behind a closed Distribution type.
package dist

import (
	"math/rand/v2"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("dist")

// Kind identifies a distribution family.
type Kind int

const (
	KindNormal Kind = iota
	KindPoisson
	KindUniform
)

var kindNames = [...]string{
	KindNormal:  "normal",
	KindPoisson: "poisson",
	KindUniform: "uniform",
}

// arity holds the number of parameters each family takes.
var arity = [...]int{
	KindNormal:  2,
	KindPoisson: 1,
	KindUniform: 2,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Arity returns the number of parameters the family takes.
func (k Kind) Arity() int {
	if k < 0 || int(k) >= len(arity) {
		return 0
	}
	return arity[k]
}

// Kinds returns the supported families in display order.
func Kinds() []Kind {
	return []Kind{KindNormal, KindPoisson, KindUniform}
}

// ParseKind maps a family name to its Kind. Matching is exact and
// case-sensitive.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDistributionType, "%q", name)
}

// Distribution is one of *Normal, *Poisson or *Uniform. The set is closed:
// types outside this package cannot implement it.
type Distribution interface {
	// Sample draws a single value, advancing src.
	Sample(src rand.Source) (float64, error)
	// String renders the parameters rounded to two decimals.
	String() string
	Kind() Kind
	// Params returns the parameters in constructor order.
	Params() []float64
	Record() Record

	sealed()
}
