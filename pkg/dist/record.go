package dist

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Record is the serialized form of a distribution: the family name and the
// user parameters, nothing else.
type Record struct {
	Type   string    `json:"type" yaml:"type"`
	Params []float64 `json:"params" yaml:"params"`
}

// Distribution rebuilds the distribution through Create, so a stored record
// is validated exactly like fresh input.
func (r Record) Distribution() (Distribution, error) {
	return Create(r.Type, r.Params...)
}

// Unmarshal decodes a JSON record and rebuilds the distribution.
func Unmarshal(data []byte) (Distribution, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "cannot decode distribution record")
	}
	return r.Distribution()
}
