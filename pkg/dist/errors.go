package dist

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownDistributionType = errors.New("unknown distribution type")
	ErrWrongParameterCount     = errors.New("wrong number of parameters")
	ErrInvalidParameter        = errors.New("invalid parameter")
	ErrSampling                = errors.New("sampling failed")
)

// ArityError reports a parameter list of the wrong length for a family.
// It matches ErrWrongParameterCount under errors.Is.
type ArityError struct {
	Kind     Kind
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	noun := "parameters"
	if e.Expected == 1 {
		noun = "parameter"
	}
	return fmt.Sprintf("%s requires exactly %d %s, got %d: %v",
		e.Kind, e.Expected, noun, e.Got, ErrWrongParameterCount)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrWrongParameterCount
}
