package fit

// Categorical fits a categorical distribution: a running frequency table keyed
// by observed value. Merging takes the union of the two key universes.
type Categorical[T comparable] struct {
	n      uint64
	counts map[T]uint64
}

// NewCategorical creates a Categorical fitter.
func NewCategorical[T comparable]() *Categorical[T] {
	return &Categorical[T]{counts: map[T]uint64{}}
}

// Absorb counts one observation.
func (f *Categorical[T]) Absorb(v T) {
	f.counts[v]++
	f.n++
}

// Merge folds another Categorical into this one, unioning the key universes.
func (f *Categorical[T]) Merge(o *Categorical[T]) {
	for k, c := range o.counts {
		f.counts[k] += c
	}
	f.n += o.n
}

// Count returns the total number of observations absorbed.
func (f *Categorical[T]) Count() uint64 {
	return f.n
}

// Value returns the estimated probability of each observed category.
// The map is empty before the first observation.
func (f *Categorical[T]) Value() map[T]float64 {
	out := make(map[T]float64, len(f.counts))
	if f.n == 0 {
		return out
	}
	for k, c := range f.counts {
		out[k] = float64(c) / float64(f.n)
	}
	return out
}
