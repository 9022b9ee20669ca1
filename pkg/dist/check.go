package dist

import (
	"math"

	"github.com/pkg/errors"
)

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidParameter, "%s must be finite, got %v", name, v)
	}
	return nil
}

// checkDraw rejects non-finite draws, which appear when the parameters are
// valid but their spread overflows float64.
func checkDraw(d Distribution, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrSampling, "%v produced %v", d, x)
	}
	return x, nil
}
