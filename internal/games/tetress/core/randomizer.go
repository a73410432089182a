package core

import "math/rand"

// Randomizer produces the piece sequence. In bag mode every aligned group
// of seven draws holds each kind exactly once; otherwise each draw is an
// independent uniform pick.
type Randomizer struct {
	rng    *rand.Rand
	useBag bool
	bag    []Kind
}

// NewRandomizer creates a randomizer drawing from rng.
func NewRandomizer(rng *rand.Rand, useBag bool) *Randomizer {
	return &Randomizer{rng: rng, useBag: useBag}
}

// Next returns the next piece kind.
func (r *Randomizer) Next() Kind {
	if !r.useBag {
		return AllKinds[r.rng.Intn(KindCount)]
	}
	if len(r.bag) == 0 {
		r.refill()
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}

func (r *Randomizer) refill() {
	r.bag = make([]Kind, 0, KindCount)
	for _, idx := range r.rng.Perm(KindCount) {
		r.bag = append(r.bag, AllKinds[idx])
	}
}
