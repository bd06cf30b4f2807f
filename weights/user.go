package weights

import "errors"

var (
	errInvalidExponent = errors.New("learning-rate exponent outside (0,1]")
	errInvalidGamma    = errors.New("learning-rate gamma outside (0,1]")
	errInvalidDamping  = errors.New("learning-rate damping is negative")
	errInvalidMinstep  = errors.New("minstep outside [0,1]")
)

// User lets the caller attach an explicit weight to each observation.
// Observe the next weight, then Advance: the coefficient is the observation's
// share of the total weight seen so far.
type User struct {
	n    uint64
	next float64
	sum  float64
}

// NewUser creates a user weight policy.
func NewUser() *User {
	return &User{next: 1}
}

// Observe sets the weight of the next observation. Non-positive weights are
// treated as zero-influence: the next coefficient will be 0 share, and the
// observation still counts.
func (w *User) Observe(weight float64) {
	if weight < 0 {
		weight = 0
	}
	w.next = weight
}

// Advance implements Policy.
func (w *User) Advance(n int) float64 {
	w.n += uint64(n)
	w.sum += w.next
	if w.sum <= 0 {
		return 1
	}
	return w.next / w.sum
}

// AdvanceSilent implements Policy.
func (w *User) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *User) Count() uint64 {
	return w.n
}

// Correction implements Policy.
func (w *User) Correction() float64 {
	return 1
}

// Reset implements Policy.
func (w *User) Reset() {
	w.n, w.sum, w.next = 0, 0, 1
}
