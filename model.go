// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Access is the bus access kind of a register.
//
type Access uint8

// Access kinds. ReadWrite is the union of Read and Write.
//
const (
	Read Access = 1 << iota
	Write

	ReadWrite = Read | Write
)

// Has returns true if a includes all access kinds in f. A zero filter matches
// any access kind.
//
func (a Access) Has(f Access) bool {
	return a&f == f
}

func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	case ReadWrite:
		return "read-write"
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
//
func (a Access) MarshalText() ([]byte, error) {
	if a == 0 || a > ReadWrite {
		return nil, errors.Errorf("invalid access kind %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It also accepts the
// IP-XACT spellings "read-only", "write-only", "writeOnce" and
// "read-writeOnce".
//
func (a *Access) UnmarshalText(text []byte) error {
	v, err := ParseAccess(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAccess parses an access kind.
//
func ParseAccess(s string) (Access, error) {
	switch strings.TrimSpace(s) {
	case "read", "read-only":
		return Read, nil
	case "write", "write-only", "writeOnce":
		return Write, nil
	case "read-write", "read-writeOnce":
		return ReadWrite, nil
	}
	return 0, errors.Errorf("unknown access kind %q", s)
}

// ModifiedWrite is the modify-on-write behavior of a field.
//
type ModifiedWrite uint8

// Modify-on-write behaviors. Only Clear affects the generated hardware;
// Modify marks fields whose writes must be signaled.
//
const (
	Normal ModifiedWrite = iota
	Clear
	Set
	Modify
	OneToClear
	OneToSet
	OneToToggle
	ZeroToClear
	ZeroToSet
	ZeroToToggle
)

var modifiedWriteNames = [...]string{
	Normal:       "normal",
	Clear:        "clear",
	Set:          "set",
	Modify:       "modify",
	OneToClear:   "oneToClear",
	OneToSet:     "oneToSet",
	OneToToggle:  "oneToToggle",
	ZeroToClear:  "zeroToClear",
	ZeroToSet:    "zeroToSet",
	ZeroToToggle: "zeroToToggle",
}

func (m ModifiedWrite) String() string {
	if int(m) < len(modifiedWriteNames) {
		return modifiedWriteNames[m]
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
//
func (m ModifiedWrite) MarshalText() ([]byte, error) {
	if int(m) >= len(modifiedWriteNames) {
		return nil, errors.Errorf("invalid modify-on-write value %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string is
// Normal.
//
func (m *ModifiedWrite) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*m = Normal
		return nil
	}
	for i, n := range modifiedWriteNames {
		if n == s {
			*m = ModifiedWrite(i)
			return nil
		}
	}
	return errors.Errorf("unknown modify-on-write value %q", s)
}

// UsageMemory is the block usage tag of memory blocks. Memory blocks get
// no interface records.
//
const UsageMemory = "memory"

// AddressMap is the root of a register map description.
//
type AddressMap struct {
	Name       string      `toml:"name" msgpack:"name"`
	Parameters []Parameter `toml:"parameter,omitempty" msgpack:"parameters"`
	Blocks     []*Block    `toml:"block" msgpack:"blocks"`
}

// Parameter is a configuration parameter of the component. Register
// presence conditions refer to parameters by ID or by name.
//
type Parameter struct {
	ID    string `toml:"id,omitempty" msgpack:"id"`
	Name  string `toml:"name" msgpack:"name"`
	Value string `toml:"value,omitempty" msgpack:"value"`
}

// Block is a contiguous region of the address map.
//
type Block struct {
	Name        string      `toml:"name" msgpack:"name"`
	BaseAddress uint64      `toml:"base_address" msgpack:"base_address"`
	Range       int         `toml:"range" msgpack:"range"`
	Usage       string      `toml:"usage,omitempty" msgpack:"usage"`
	Registers   []*Register `toml:"register" msgpack:"registers"`
}

// Memory returns true for blocks tagged as memory.
//
func (b *Block) Memory() bool { return b.Usage == UsageMemory }

// SortedRegisters returns the block's registers in ascending address offset
// order. Registers with the same offset keep their declaration order.
//
func (b *Block) SortedRegisters() []*Register {
	rs := make([]*Register, len(b.Registers))
	copy(rs, b.Registers)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Offset < rs[j].Offset })
	return rs
}

// Register is a register within a block.
//
type Register struct {
	Name          string  `toml:"name" msgpack:"name"`
	Offset        int     `toml:"offset" msgpack:"offset"` // byte offset within the block
	Size          int     `toml:"size" msgpack:"size"`     // bits
	Access        Access  `toml:"access" msgpack:"access"`
	IsPresent     string  `toml:"is_present,omitempty" msgpack:"is_present"`
	ReadIndicate  bool    `toml:"read_indicate,omitempty" msgpack:"read_indicate"`
	WriteIndicate bool    `toml:"write_indicate,omitempty" msgpack:"write_indicate"`
	Fields        []Field `toml:"field,omitempty" msgpack:"fields"`
}

// Readable returns true if r can be read.
//
func (r *Register) Readable() bool { return r.Access.Has(Read) }

// Writable returns true if r can be written.
//
func (r *Register) Writable() bool { return r.Access.Has(Write) }

// ReadWrite returns true if r is a read-write register.
//
func (r *Register) ReadWrite() bool { return r.Access == ReadWrite }

// PureRead returns true if r is readable but not writable. The value of such
// registers is supplied from outside the register map.
//
func (r *Register) PureRead() bool { return r.Access == Read }

// HasIndication returns true if reads or writes of r must be signaled.
//
func (r *Register) HasIndication() bool { return r.ReadIndicate || r.WriteIndicate }

// Bytes returns the register size in bytes.
//
func (r *Register) Bytes() int { return r.Size / 8 }

// SortedFields returns the register's fields in ascending bit offset order.
//
func (r *Register) SortedFields() []Field {
	fs := make([]Field, len(r.Fields))
	copy(fs, r.Fields)
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Offset < fs[j].Offset })
	return fs
}

// Field is a bit field within a register.
//
type Field struct {
	Name          string        `toml:"name" msgpack:"name"`
	Offset        int           `toml:"offset" msgpack:"offset"` // bit offset
	Width         int           `toml:"width" msgpack:"width"`
	Reset         uint64        `toml:"reset,omitempty" msgpack:"reset"`
	ModifiedWrite ModifiedWrite `toml:"modified_write,omitempty" msgpack:"modified_write"`
}
