package gallery

// Sequence is the live order of the rendered strip, stored as a ring over the
// positions 0..n-1. The only mutation is rotation, so the set of positions it
// holds is constant and the order is always a cyclic rotation of the input.
type Sequence struct {
	n    int
	head int
}

// NewSequence returns the identity ordering over n positions.
func NewSequence(n int) Sequence {
	if n < 0 {
		n = 0
	}
	return Sequence{n: n}
}

// Len returns the number of positions in the ring.
func (s Sequence) Len() int { return s.n }

// Rotation returns how many head-to-tail moves separate the current order from
// the identity order, in [0, Len).
func (s Sequence) Rotation() int { return s.head }

// At returns the position rendered at slot i (0 is the left-most slot).
func (s Sequence) At(i int) int {
	if s.n == 0 {
		return -1
	}
	return ((s.head+i)%s.n + s.n) % s.n
}

// Order returns the rendered positions from left to right.
func (s Sequence) Order() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// MoveHeadToTail takes the left-most entry and appends it on the right.
func (s *Sequence) MoveHeadToTail() { s.Rotate(1) }

// MoveTailToHead takes the right-most entry and prepends it on the left.
func (s *Sequence) MoveTailToHead() { s.Rotate(-1) }

// Rotate applies k head-to-tail moves (negative k moves tail to head).
func (s *Sequence) Rotate(k int) {
	if s.n == 0 {
		return
	}
	s.head = ((s.head+k)%s.n + s.n) % s.n
}

// Reset restores the identity order.
func (s *Sequence) Reset() { s.head = 0 }
