package pressure

import "math/bits"

// MaxInteresting is the largest number of valves with a positive flow rate
// a Mask can track.
const MaxInteresting = 64

// Mask is a set of opened valves. Bit i is the valve at dense index i.
type Mask uint64

// FullMask returns the mask with the low k bits set.
func FullMask(k int) Mask {
	if k <= 0 {
		return 0
	}
	if k >= MaxInteresting {
		return ^Mask(0)
	}
	return 1<<uint(k) - 1
}

// Has reports whether bit i is set. Indexes outside the mask are never set.
func (m Mask) Has(i int) bool {
	return m&bit(i) != 0
}

func (m Mask) With(i int) Mask {
	return m | bit(i)
}

func (m Mask) Without(i int) Mask {
	return m &^ bit(i)
}

// Len returns the number of set bits.
func (m Mask) Len() int {
	return bits.OnesCount64(uint64(m))
}

// bit returns the mask with only bit i set, or 0 when i is out of range.
// Shifting by the width or more yields 0, and a negative i converts to a
// huge shift.
func bit(i int) Mask {
	return 1 << uint(i)
}
