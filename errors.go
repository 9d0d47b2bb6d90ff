package fingertree

import "errors"

var (
	// ErrStructure signals a tree shape an operation does not expect. It is never
	// raised for trees built through the API and indicates a defect of this package.
	ErrStructure = errors.New("fingertree: structural invariant violated")
	// ErrArity signals a conversion of an item list to a node (2–3 items) or
	// to an affix (1–4 items) with an illegal number of items.
	ErrArity = errors.New("fingertree: invalid arity")
	// ErrMeasureMismatch signals an attempt to concatenate trees with different measures.
	ErrMeasureMismatch = errors.New("fingertree: measure mismatch")
)
