package tetris

import "math/rand"

// Bag produces tetromino kinds via the standard 7-bag randomizer: each bag is
// a shuffled permutation of all seven kinds, exhausted before the next bag is
// shuffled. Peek can look arbitrarily far ahead without consuming pieces.
type Bag struct {
	rng     *rand.Rand
	pending []Kind // next pieces, nearest-first; refilled when empty
}

// NewBag returns a 7-bag generator seeded deterministically.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next pops and returns the next kind, refilling the bag first if empty.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

// Peek returns the next n kinds without consuming them, refilling as many
// bags ahead as needed.
func (b *Bag) Peek(n int) []Kind {
	for len(b.pending) < n {
		b.pending = append(b.pending, b.shuffledBag()...)
	}
	out := make([]Kind, n)
	copy(out, b.pending[:n])
	return out
}

func (b *Bag) refill() {
	b.pending = append(b.pending, b.shuffledBag()...)
}

// shuffledBag returns one freshly shuffled permutation of all seven kinds,
// via Fisher-Yates over the rng, matching the reference randomizer's
// random.shuffle of a bag copy.
func (b *Bag) shuffledBag() []Kind {
	bag := make([]Kind, len(Kinds))
	copy(bag, Kinds[:])
	for i := len(bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag
}

// Reset reseeds the generator and discards any pending lookahead, so the bag
// produces the same sequence as a freshly constructed Bag with that seed.
func (b *Bag) Reset(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
	b.pending = nil
}
