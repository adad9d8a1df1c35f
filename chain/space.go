package chain

// Discrete describes a space of integer values 0..N-1. The environment
// exposes one for its actions and one for its observations so that agents
// can validate their choices before calling Step.
type Discrete struct {
	N int
}

func (d Discrete) Contains(v int) bool {
	return v >= 0 && v < d.N
}

func (d Discrete) Size() int {
	return d.N
}
