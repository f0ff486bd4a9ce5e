// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Schema is the query interface the generators consume. Layout is the
// implementation built from an AddressMap.
//
type Schema interface {
	// WordBytes returns the bus word width in bytes.
	WordBytes() int
	// WordSpan returns the lowest and highest word aligned addresses that
	// contain a register whose access kind includes filter. A zero filter
	// matches all registers. ok is false if no register matches.
	WordSpan(b *Block, filter Access) (low, high int, ok bool)
	// RegistersInWord returns the registers whose bytes intersect the word
	// at addr, in ascending offset order.
	RegistersInWord(b *Block, addr int) []*Register
	// ParameterName resolves a presence condition to a parameter name.
	ParameterName(ref string) (string, error)
}

// Layout implements Schema for an address map and a bus word width.
//
type Layout struct {
	wordBytes int
	params    []Parameter
}

// NewLayout returns a Layout for m. wordBytes must be a power of two.
//
func NewLayout(m *AddressMap, wordBytes int) (*Layout, error) {
	if wordBytes <= 0 || wordBytes&(wordBytes-1) != 0 {
		return nil, errors.Errorf("word width of %d bytes is not a power of two", wordBytes)
	}
	l := &Layout{wordBytes: wordBytes}
	if m != nil {
		l.params = append(l.params, m.Parameters...)
	}
	return l, nil
}

// WordBytes implements Schema.
//
func (l *Layout) WordBytes() int { return l.wordBytes }

// WordSpan implements Schema.
//
func (l *Layout) WordSpan(b *Block, filter Access) (low, high int, ok bool) {
	w := l.wordBytes
	for _, r := range b.Registers {
		if !r.Access.Has(filter) {
			continue
		}
		lo := r.Offset - r.Offset%w
		last := r.Offset + r.Bytes() - 1
		if last < r.Offset {
			last = r.Offset
		}
		hi := last - last%w
		if !ok || lo < low {
			low = lo
		}
		if !ok || hi > high {
			high = hi
		}
		ok = true
	}
	return low, high, ok
}

// RegistersInWord implements Schema.
//
func (l *Layout) RegistersInWord(b *Block, addr int) []*Register {
	var rs []*Register
	for _, r := range b.SortedRegisters() {
		if r.Offset < addr+l.wordBytes && r.Offset+r.Bytes() > addr {
			rs = append(rs, r)
		}
	}
	return rs
}

// ParameterName implements Schema. ref is either a parameter ID, a parameter
// name or an IP-XACT id('...') reference.
//
func (l *Layout) ParameterName(ref string) (string, error) {
	id := strings.TrimSpace(ref)
	if strings.HasPrefix(id, "id(") && strings.HasSuffix(id, ")") {
		id = strings.Trim(id[3:len(id)-1], "'\" ")
	}
	for _, p := range l.params {
		if p.ID != "" && p.ID == id {
			return p.Name, nil
		}
	}
	for _, p := range l.params {
		if p.Name == id {
			return p.Name, nil
		}
	}
	return "", errors.Errorf("unknown parameter %q", ref)
}

// log2 returns ⌈log2(n)⌉.
func log2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// WordCount returns the number of bus words spanned by the block's range.
//
func WordCount(s Schema, b *Block) int {
	w := s.WordBytes()
	return (b.Range + w - 1) / w
}

// WordAddressWidth returns the width of a word address within b. The width
// is at least one bit.
//
func WordAddressWidth(s Schema, b *Block) int {
	if n := log2(WordCount(s, b)); n > 0 {
		return n
	}
	return 1
}

// AddressIndexRange returns the bounds of the address bus slice that selects
// a word within b.
//
func AddressIndexRange(s Schema, b *Block) (low, high int) {
	low = log2(s.WordBytes())
	return low, low + WordAddressWidth(s, b) - 1
}

// PopulatedWords returns the addresses of the words of b that contain at
// least one register, in ascending order.
//
func PopulatedWords(s Schema, b *Block) []int {
	low, high, ok := s.WordSpan(b, 0)
	if !ok {
		return nil
	}
	var ws []int
	for addr := low; addr <= high; addr += s.WordBytes() {
		if len(s.RegistersInWord(b, addr)) > 0 {
			ws = append(ws, addr)
		}
	}
	return ws
}

// WordSelect returns the index of r's word in the address decoder output.
// ok is false if r does not belong to a populated word of b.
//
func WordSelect(s Schema, b *Block, r *Register) (index int, ok bool) {
	word := r.Offset - r.Offset%s.WordBytes()
	for i, addr := range PopulatedWords(s, b) {
		if addr == word {
			return i, true
		}
	}
	return 0, false
}

// ByteEnableRange returns the byte enable lanes of r within a word of
// wordBytes bytes.
//
func ByteEnableRange(wordBytes int, r *Register) (low, high int) {
	low = r.Offset % wordBytes
	return low, low + r.Bytes() - 1
}

// DataSlice returns the bit range of the data bus that carries r.
//
func DataSlice(wordBytes int, r *Register) (low, high int) {
	low = (r.Offset * 8) % (wordBytes * 8)
	return low, low + r.Size - 1
}

// AddressVector is the sparse select table of an address decoder: one entry
// per populated word.
//
type AddressVector struct {
	EntryWidth int   // bits per entry
	Words      []int // word indices, ascending
}

// NewAddressVector computes the address vector of b. ok is false if b has
// no register.
//
func NewAddressVector(s Schema, b *Block) (v AddressVector, ok bool) {
	low, high, ok := s.WordSpan(b, 0)
	if !ok {
		return v, false
	}
	w := s.WordBytes()
	v.EntryWidth = WordAddressWidth(s, b)
	for addr := low; addr <= high; addr += w {
		if len(s.RegistersInWord(b, addr)) == 0 {
			continue
		}
		v.Words = append(v.Words, addr/w)
	}
	return v, true
}

// Len returns the vector length in bits.
//
func (v AddressVector) Len() int { return v.EntryWidth * len(v.Words) }

// String returns the vector bits, highest address entry first.
//
func (v AddressVector) String() string {
	var b strings.Builder
	b.Grow(v.Len())
	for i := len(v.Words) - 1; i >= 0; i-- {
		e := strconv.FormatUint(uint64(v.Words[i]), 2)
		for n := len(e); n < v.EntryWidth; n++ {
			b.WriteByte('0')
		}
		b.WriteString(e)
	}
	return b.String()
}

// Literal returns v as a VHDL bit string literal.
//
func (v AddressVector) Literal() string {
	return `"` + v.String() + `"`
}
