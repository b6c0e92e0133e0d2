package random

import (
	"io"

	"github.com/32bitkid/bitreader"
)

// DiceRoller draws uniform integers from a stream of random bits with
// Lumbroso's Fast Dice Roller, which consumes close to the entropy minimum.
// Once the stream fails, every draw returns lo and Err reports the failure.
type DiceRoller struct {
	bits bitreader.BitReader
	err  error
}

// NewDiceRoller reads bits from r, typically crypto/rand.Reader or a file.
func NewDiceRoller(r io.Reader) *DiceRoller {
	return &DiceRoller{bits: bitreader.NewReader(r)}
}

// Err returns the first error of the bit stream, if any.
func (d *DiceRoller) Err() error {
	return d.err
}

func (d *DiceRoller) UniformInt(lo, hi int) int {
	checkRange(lo, hi)
	if lo == hi || d.err != nil {
		return lo
	}

	n := uint64(hi-lo) + 1
	var v, c uint64 = 1, 0
	for {
		bit, err := d.bits.Read1()
		if err != nil {
			d.err = err
			return lo
		}

		v <<= 1
		c <<= 1
		if bit {
			c |= 1
		}
		if v >= n {
			if c < n {
				return lo + int(c)
			}
			v -= n
			c -= n
		}
	}
}
