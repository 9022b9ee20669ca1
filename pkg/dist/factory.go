package dist

// Create builds a distribution from a family name and its parameters.
// The parameter count is checked before any value, so a wrong-length list
// fails with an *ArityError even when the values would be valid.
func Create(name string, params ...float64) (Distribution, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	if len(params) != kind.Arity() {
		return nil, &ArityError{Kind: kind, Expected: kind.Arity(), Got: len(params)}
	}

	var d Distribution
	switch kind {
	case KindNormal:
		d, err = NewNormal(params[0], params[1])
	case KindPoisson:
		d, err = NewPoisson(params[0])
	case KindUniform:
		d, err = NewUniform(params[0], params[1])
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("created %v", d)
	return d, nil
}

// Arity returns the number of parameters the named family takes.
func Arity(name string) (int, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return 0, err
	}
	return kind.Arity(), nil
}
