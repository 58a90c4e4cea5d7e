package csp

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Domain is the set of letters still possible at one position. The only
// mutations offered shrink it.
type Domain struct {
	bits *bitset.BitSet
}

func fullDomain() *Domain {
	b := bitset.New(wordle.Letters)
	for i := uint(0); i < wordle.Letters; i++ {
		b.Set(i)
	}
	return &Domain{bits: b}
}

func (d *Domain) Contains(c byte) bool {
	return d.bits.Test(uint(c - 'a'))
}

// Remove drops c and reports whether it was present.
func (d *Domain) Remove(c byte) bool {
	i := uint(c - 'a')
	if !d.bits.Test(i) {
		return false
	}
	d.bits.Clear(i)
	return true
}

// Restrict intersects the domain with {c}. If c was already ruled out the
// domain ends up empty.
func (d *Domain) Restrict(c byte) {
	keep := d.Contains(c)
	d.bits.ClearAll()
	if keep {
		d.bits.Set(uint(c - 'a'))
	}
}

func (d *Domain) Len() int {
	return int(d.bits.Count())
}

func (d *Domain) Letters() []byte {
	ret := make([]byte, 0, d.Len())
	for i, ok := d.bits.NextSet(0); ok; i, ok = d.bits.NextSet(i + 1) {
		ret = append(ret, byte(i)+'a')
	}
	return ret
}

func (d *Domain) Clone() *Domain {
	return &Domain{bits: d.bits.Clone()}
}

// SubsetOf reports whether every letter in d is also in other.
func (d *Domain) SubsetOf(other *Domain) bool {
	return other.bits.IsSuperSet(d.bits)
}

func (d *Domain) String() string {
	if d.Len() == wordle.Letters {
		return "*"
	}
	var b strings.Builder
	b.WriteByte('{')
	b.Write(d.Letters())
	b.WriteByte('}')
	return b.String()
}
