// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mapfile

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/db47h/regmap"
	"github.com/pkg/errors"
)

// IP-XACT elements. Names match in any namespace, so both the spirit (2009)
// and ipxact (2014) schemas are accepted.

type xComponent struct {
	Name       string       `xml:"name"`
	Parameters []xParameter `xml:"parameters>parameter"`
	MemoryMaps []xMemoryMap `xml:"memoryMaps>memoryMap"`
}

type xParameter struct {
	ID    string `xml:"parameterId,attr"`
	Name  string `xml:"name"`
	Value struct {
		Text string `xml:",chardata"`
		ID   string `xml:"id,attr"`
	} `xml:"value"`
}

type xMemoryMap struct {
	Name   string          `xml:"name"`
	Blocks []xAddressBlock `xml:"addressBlock"`
}

type xAddressBlock struct {
	Name        string      `xml:"name"`
	BaseAddress string      `xml:"baseAddress"`
	Range       string      `xml:"range"`
	Usage       string      `xml:"usage"`
	Access      string      `xml:"access"`
	Registers   []xRegister `xml:"register"`
}

type xRegister struct {
	Name          string   `xml:"name"`
	AddressOffset string   `xml:"addressOffset"`
	Size          string   `xml:"size"`
	Access        string   `xml:"access"`
	IsPresent     string   `xml:"isPresent"`
	Reset         string   `xml:"reset>value"`
	Fields        []xField `xml:"field"`
}

type xField struct {
	Name               string `xml:"name"`
	BitOffset          string `xml:"bitOffset"`
	BitWidth           string `xml:"bitWidth"`
	Access             string `xml:"access"`
	Reset              string `xml:"resets>reset>value"`
	ModifiedWriteValue string `xml:"modifiedWriteValue"`
	ReadAction         string `xml:"readAction"`
}

var scale = map[byte]uint64{'k': 1 << 10, 'm': 1 << 20, 'g': 1 << 30, 't': 1 << 40}

// parseNumber parses IP-XACT numbers: decimal, 0x or # prefixed hex,
// Verilog style [width]'[hdbo]digits, with an optional k, m, g or t
// scaling suffix on plain numbers.
//
func parseNumber(s string) (uint64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, errors.New("empty number")
	}
	if i := strings.IndexByte(s, '\''); i >= 0 {
		if i+2 > len(s) {
			return 0, errors.Errorf("invalid number %q", s)
		}
		var base int
		switch s[i+1] {
		case 'h', 'H':
			base = 16
		case 'd', 'D':
			base = 10
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		default:
			return 0, errors.Errorf("invalid base in %q", s)
		}
		v, err := strconv.ParseUint(s[i+2:], base, 64)
		return v, errors.Wrapf(err, "invalid number %q", s)
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, errors.Wrapf(err, "invalid number %q", s)
	case strings.HasPrefix(lower, "#"):
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, errors.Wrapf(err, "invalid number %q", s)
	}
	mul := uint64(1)
	if m, ok := scale[lower[len(lower)-1]]; ok {
		mul = m
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	if v > ^uint64(0)/mul {
		return 0, errors.Errorf("number %q out of range", s)
	}
	return v * mul, nil
}

// parseInt parses a number that must fit in an int.
func parseInt(s string) (int, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int](v)
}

func decodeIPXACT(r io.Reader) ([]*regmap.AddressMap, error) {
	var c xComponent
	if err := xml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	var params []regmap.Parameter
	for _, p := range c.Parameters {
		id := p.ID
		if id == "" {
			id = p.Value.ID
		}
		params = append(params, regmap.Parameter{
			ID:    strings.TrimSpace(id),
			Name:  strings.TrimSpace(p.Name),
			Value: strings.TrimSpace(p.Value.Text),
		})
	}
	var ms []*regmap.AddressMap
	for _, xm := range c.MemoryMaps {
		m := &regmap.AddressMap{Name: strings.TrimSpace(xm.Name), Parameters: params}
		for i := range xm.Blocks {
			b, err := xm.Blocks[i].block()
			if err != nil {
				return nil, errors.Wrapf(err, "memory map %s", m.Name)
			}
			m.Blocks = append(m.Blocks, b)
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func (xb *xAddressBlock) block() (*regmap.Block, error) {
	var err error
	b := &regmap.Block{Name: strings.TrimSpace(xb.Name), Usage: strings.TrimSpace(xb.Usage)}
	if b.BaseAddress, err = parseNumber(xb.BaseAddress); err != nil {
		return nil, errors.Wrapf(err, "block %s: baseAddress", b.Name)
	}
	if b.Range, err = parseInt(xb.Range); err != nil {
		return nil, errors.Wrapf(err, "block %s: range", b.Name)
	}
	for i := range xb.Registers {
		r, err := xb.Registers[i].register(xb.Access)
		if err != nil {
			return nil, errors.Wrapf(err, "block %s", b.Name)
		}
		b.Registers = append(b.Registers, r)
	}
	return b, nil
}

// register converts xr. Without an access element, the register inherits
// the block access or, failing that, the union of its fields access.
//
func (xr *xRegister) register(blockAccess string) (*regmap.Register, error) {
	var err error
	r := &regmap.Register{Name: strings.TrimSpace(xr.Name), IsPresent: strings.TrimSpace(xr.IsPresent)}
	wrap := func(err error, what string) error {
		return errors.Wrapf(err, "register %s: %s", r.Name, what)
	}
	if r.Offset, err = parseInt(xr.AddressOffset); err != nil {
		return nil, wrap(err, "addressOffset")
	}
	if r.Size, err = parseInt(xr.Size); err != nil {
		return nil, wrap(err, "size")
	}
	var regReset uint64
	if strings.TrimSpace(xr.Reset) != "" {
		if regReset, err = parseNumber(xr.Reset); err != nil {
			return nil, wrap(err, "reset")
		}
	}
	var fieldAccess regmap.Access
	for i := range xr.Fields {
		xf := &xr.Fields[i]
		f := regmap.Field{Name: strings.TrimSpace(xf.Name)}
		if f.Offset, err = parseInt(xf.BitOffset); err != nil {
			return nil, wrap(err, "field "+f.Name+": bitOffset")
		}
		if f.Width, err = parseInt(xf.BitWidth); err != nil {
			return nil, wrap(err, "field "+f.Name+": bitWidth")
		}
		switch {
		case strings.TrimSpace(xf.Reset) != "":
			if f.Reset, err = parseNumber(xf.Reset); err != nil {
				return nil, wrap(err, "field "+f.Name+": reset")
			}
		case f.Offset < 64 && f.Width > 0:
			f.Reset = regReset >> uint(f.Offset)
			if f.Width < 64 {
				f.Reset &= 1<<uint(f.Width) - 1
			}
		}
		if err = f.ModifiedWrite.UnmarshalText([]byte(strings.TrimSpace(xf.ModifiedWriteValue))); err != nil {
			return nil, wrap(err, "field "+f.Name)
		}
		if f.ModifiedWrite == regmap.Modify {
			r.WriteIndicate = true
		}
		if strings.TrimSpace(xf.ReadAction) == "modify" {
			r.ReadIndicate = true
		}
		if a := strings.TrimSpace(xf.Access); a != "" {
			fa, err := regmap.ParseAccess(a)
			if err != nil {
				return nil, wrap(err, "field "+f.Name)
			}
			fieldAccess |= fa
		}
		r.Fields = append(r.Fields, f)
	}

	access := strings.TrimSpace(xr.Access)
	if access == "" {
		access = strings.TrimSpace(blockAccess)
	}
	switch {
	case access != "":
		if r.Access, err = regmap.ParseAccess(access); err != nil {
			return nil, wrap(err, "access")
		}
	case fieldAccess != 0:
		r.Access = fieldAccess
	default:
		r.Access = regmap.ReadWrite
	}
	return r, nil
}
