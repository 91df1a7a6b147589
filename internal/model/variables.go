package model

// Variables is the host's keyed numeric store, exposed to formulas as v.
// Single-threaded like the rest of the evaluation core; the host mutates
// it between evaluations, never during one.
type Variables struct {
	values map[int]float64
}

// NewVariables returns an empty variable store.
func NewVariables() *Variables {
	return &Variables{values: make(map[int]float64)}
}

// Get returns the value at index; unset indices read as 0.
func (v *Variables) Get(index int) float64 {
	if v == nil {
		return 0
	}
	return v.values[index]
}

// Set stores a value at index.
func (v *Variables) Set(index int, value float64) {
	v.values[index] = value
}
