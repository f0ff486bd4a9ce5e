// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"fmt"
	"strings"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwlib"
	"github.com/db47h/regmap/internal/hdl"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// EntityName returns the name of the register map entity of b.
//
func EntityName(b *regmap.Block) string { return hdl.Ident(b.Name + "_reg_map") }

// architecture signals and constants
const (
	sRegSel   = "reg_sel"
	cAddrVect = "ADDR_VECT"
	sMuxIn    = "read_data_mux_in"
	sMask     = "read_data_mask"
	sMuxEna   = "read_mux_ena"
	zeroByte  = `"00000000"`
)

// names a presence generic must not take.
var reservedNames = [...]string{
	hwlib.DataWidth, hwlib.AddressWidth, hwlib.RegisteredRead, hwlib.ClearReadData, hwlib.ResetPolarity,
	cAddrVect,
}

// entity generics, as referenced in the architecture body.
var (
	gResetPolarity  = hdl.Const(hwlib.ResetPolarity)
	gClearReadData  = hdl.Const(hwlib.ClearReadData)
	gRegisteredRead = hdl.Const(hwlib.RegisteredRead)
)

type blockGen struct {
	*Generator
	w   hdl.Writer
	b   *regmap.Block
	log logr.Logger
	err error

	wordBytes int
	addrWidth int    // address bus width
	addr      string // word address slice of the address bus
	vect      regmap.AddressVector
	params    []string // presence generics, in register order

	readable          bool
	readLow, readHigh int
}

// Block renders the register map entity of b. No text is returned if b is
// malformed, has no register or if a component fails to bind.
//
func (g *Generator) Block(b *regmap.Block) ([]byte, error) {
	if err := regmap.ValidateBlock(g.schema, b); err != nil {
		return nil, err
	}
	vect, ok := regmap.NewAddressVector(g.schema, b)
	if !ok {
		return nil, errors.WithStack(&regmap.Error{Kind: regmap.Degenerate, Block: b.Name, Msg: "no register to decode"})
	}
	bg := &blockGen{
		Generator: g,
		b:         b,
		log:       g.log.WithValues("block", b.Name),
		wordBytes: g.schema.WordBytes(),
		vect:      vect,
	}
	low, high := regmap.AddressIndexRange(g.schema, b)
	bg.addr = hdl.Slice(hwlib.Address, high, low)
	bg.addrWidth = high + 1
	if g.addressWidth > 0 {
		if g.addressWidth <= high {
			return nil, errors.WithStack(&regmap.Error{Kind: regmap.Malformed, Block: b.Name,
				Msg: fmt.Sprintf("address bus of %d bits too narrow, need at least %d", g.addressWidth, high+1)})
		}
		bg.addrWidth = g.addressWidth
	}
	if err := bg.resolveParams(); err != nil {
		return nil, err
	}
	bg.readLow, bg.readHigh, bg.readable = g.schema.WordSpan(b, regmap.Read)

	bg.log.V(1).Info("layout",
		"words", regmap.WordCount(g.schema, b),
		"populated", len(vect.Words),
		"addrVect", vect.String(),
		"readable", bg.readable)

	bg.render()
	if bg.err != nil {
		return nil, bg.err
	}
	return bg.w.Bytes(), nil
}

// resolveParams collects the distinct presence parameters of the block.
func (bg *blockGen) resolveParams() error {
	for _, r := range bg.b.SortedRegisters() {
		if r.IsPresent == "" {
			continue
		}
		p, err := bg.param(r)
		if err != nil {
			return err
		}
		for _, n := range reservedNames {
			if strings.EqualFold(p, n) {
				return errors.WithStack(&regmap.Error{Kind: regmap.Malformed, Block: bg.b.Name, Register: r.Name,
					Msg: fmt.Sprintf("presence parameter %s clashes with generic or constant %s", p, n)})
			}
		}
		dup := false
		for _, n := range bg.params {
			dup = dup || n == p
		}
		if !dup {
			bg.params = append(bg.params, p)
		}
	}
	return nil
}

// param returns the generic name of r's presence condition.
func (bg *blockGen) param(r *regmap.Register) (string, error) {
	n, err := bg.schema.ParameterName(r.IsPresent)
	if err != nil {
		return "", errors.WithStack(&regmap.Error{Kind: regmap.Malformed, Block: bg.b.Name, Register: r.Name, Msg: err.Error()})
	}
	return hdl.Const(n), nil
}

func (bg *blockGen) outI() string { return outName(bg.b) + "_i" }

func (bg *blockGen) resetLiteral() string {
	if bg.resetPolarity {
		return "'1'"
	}
	return "'0'"
}

func (bg *blockGen) entity() *hdl.Entity {
	bus := hwlib.Bus{
		DataWidth:      bg.wordBytes * 8,
		AddressWidth:   bg.addrWidth,
		RegisteredRead: bg.registeredRead,
		ClearReadData:  bg.clearReadData,
		ResetPolarity:  bg.resetLiteral(),
	}
	e := bus.Entity(EntityName(bg.b))
	for _, p := range bg.params {
		e.Generics = append(e.Generics, hdl.Decl{Class: "constant", Name: p, Type: "boolean", Default: "true"})
	}
	if bg.b.Memory() {
		return e
	}
	out, in := outName(bg.b), inName(bg.b)
	e.Ports = append(e.Ports,
		hdl.Decl{Class: "signal", Name: out, Mode: hdl.Out, Type: out + "_t"},
		hdl.Decl{Class: "signal", Name: in, Mode: hdl.In, Type: in + "_t"})
	return e
}

func (bg *blockGen) decls() []hdl.Decl {
	ds := []hdl.Decl{
		{Class: "signal", Name: sRegSel, Type: hdl.Vector(len(bg.vect.Words))},
		{Class: "constant", Name: cAddrVect, Type: hdl.Vector(bg.vect.Len()), Default: bg.vect.Literal()},
	}
	if bg.readable {
		ds = append(ds,
			hdl.Decl{Class: "signal", Name: sMuxIn, Type: hdl.Vector(bg.readBits())},
			hdl.Decl{Class: "signal", Name: sMask, Type: hdl.Vector(bg.wordBytes * 8)})
	}
	ds = append(ds, hdl.Decl{Class: "signal", Name: bg.outI(), Type: outName(bg.b) + "_t"})
	if bg.readable {
		ds = append(ds, hdl.Decl{Class: "signal", Name: sMuxEna, Type: "std_logic"})
	}
	return ds
}

func (bg *blockGen) render() {
	w := &bg.w
	bg.header(w, "Register map implementation of: "+bg.b.Name)
	w.Use("work", bg.PackageName()+".all", hwlib.CommonPackage+".all")
	w.NL()
	w.Entity(bg.entity())
	w.NL()
	w.ArchitectureTypes("rtl", EntityName(bg.b), bg.localTypes(), bg.decls(), func(ind int) {
		bg.facts(ind)
		bg.addressDecoder(ind)
		for _, r := range bg.b.SortedRegisters() {
			bg.register(ind, r)
		}
		if bg.readable {
			bg.readMuxEnable(ind)
			bg.readMux(ind)
			bg.readData(ind)
			bg.readMask(ind)
		} else {
			w.Comment(ind, "No readable register")
			w.Assign(ind, hwlib.RData, "(others => '0')")
			w.NL()
		}
		if !bg.b.Memory() {
			w.Comment(ind, "Write register record")
			w.Assign(ind, outName(bg.b), bg.outI())
			w.NL()
		}
		bg.cover(ind)
	})
}

// localTypes returns the writer of the output record type for memory blocks,
// which have no record in the map package. It returns nil for other blocks.
//
func (bg *blockGen) localTypes() func(ind int) {
	if !bg.b.Memory() {
		return nil
	}
	rec := OutputRecord(bg.b)
	return func(ind int) {
		bg.w.Record(ind, rec.Name(), rec.Fields())
	}
}

// instance binds p and writes the instantiation. The first error is kept in
// bg.err and further instances are ignored.
//
func (bg *blockGen) instance(ind int, r *regmap.Register, label string, p hwlib.Part) {
	if bg.err != nil {
		return
	}
	inst, err := hwlib.Instance(hdl.Ident(label), p)
	if err != nil {
		if e, ok := errors.Cause(err).(*regmap.Error); ok {
			e.Block = bg.b.Name
			if r != nil {
				e.Register = r.Name
			}
		}
		bg.err = err
		return
	}
	bg.log.V(2).Info("bind", "label", inst.Label, "component", inst.Component)
	bg.w.Instance(ind, inst.Instantiation())
}

func (bg *blockGen) facts(ind int) {
	w, s := &bg.w, bg.schema
	w.Comment(ind, fmt.Sprintf("Word width: %d bytes, block range: %d bytes, %d words",
		bg.wordBytes, bg.b.Range, regmap.WordCount(s, bg.b)))
	w.Comment(ind, fmt.Sprintf("Word address: %s, %d populated words",
		bg.addr, len(bg.vect.Words)))
	w.NL()
}

func (bg *blockGen) addressDecoder(ind int) {
	bg.w.Comment(ind, "Write address to one-hot decoder")
	bg.instance(ind, nil, "address_decoder_"+bg.b.Name+"_comp", &hwlib.AddressDecoder{
		AddressWidth:   bg.vect.EntryWidth,
		AddressEntries: len(bg.vect.Words),
		AddrVect:       cAddrVect,
		RegisteredOut:  false,
		ResetPolarity:  gResetPolarity,
		Clk:            hwlib.Clk,
		Reset:          hwlib.Reset,
		Address:        bg.addr,
		Enable:         hwlib.CS,
		Select:         sRegSel,
	})
	bg.w.NL()
}

// register writes the storage cell and access signaler of r, wrapped in
// if-generates when r has a presence condition.
//
func (bg *blockGen) register(ind int, r *regmap.Register) {
	if !r.Writable() && !r.HasIndication() {
		return
	}
	w := &bg.w
	if r.IsPresent == "" {
		bg.registerComps(ind, r)
		w.NL()
		return
	}
	param, err := bg.param(r)
	if err != nil {
		bg.err = err
		return
	}
	name := hdl.Ident(r.Name)
	w.IfGenerate(ind, name+"_present_gen_t", param, func(ind int) {
		bg.registerComps(ind, r)
	})
	w.NL()
	w.IfGenerate(ind, name+"_present_gen_f", "not "+param, func(ind int) {
		if r.Writable() {
			w.Assign(ind, hdl.Select(bg.outI(), r.Name), regmap.ResetMask(r).Literal())
		}
		if r.WriteIndicate {
			w.Assign(ind, hdl.Select(bg.outI(), UpdateField(r)), "'0'")
		}
		if r.ReadIndicate {
			w.Assign(ind, hdl.Select(bg.outI(), ReadField(r)), "'0'")
		}
	})
	w.NL()
}

func (bg *blockGen) registerComps(ind int, r *regmap.Register) {
	w := &bg.w
	sel, _ := regmap.WordSelect(bg.schema, bg.b, r)
	cs := hdl.Index(sRegSel, sel)
	beLow, beHigh := regmap.ByteEnableRange(bg.wordBytes, r)
	be := hdl.Slice(hwlib.BE, beHigh, beLow)

	if r.Writable() {
		dLow, dHigh := regmap.DataSlice(bg.wordBytes, r)
		ac := regmap.AutoclearMask(r)
		if bg.autoclearFull {
			ac = regmap.AutoclearMaskFull(r)
		}
		w.Comment(ind, hdl.Const(r.Name)+" register")
		bg.instance(ind, r, r.Name+"_reg_comp", &hwlib.MemoryReg{
			DataWidth:     r.Size,
			DataMask:      regmap.DataMask(r).Literal(),
			ResetPolarity: gResetPolarity,
			ResetValue:    regmap.ResetMask(r).Literal(),
			AutoClear:     ac.Literal(),
			Clk:           hwlib.Clk,
			Reset:         hwlib.Reset,
			DataIn:        hdl.Slice(hwlib.WData, dHigh, dLow),
			Write:         hwlib.Write,
			CS:            cs,
			BE:            be,
			RegValue:      hdl.Select(bg.outI(), r.Name),
		})
	}
	if !r.HasIndication() {
		return
	}
	if r.Writable() {
		w.NL()
	}
	sig := &hwlib.AccessSignaler{
		ResetPolarity:      gResetPolarity,
		DataWidth:          r.Size,
		ReadSignalling:     r.ReadIndicate,
		WriteSignalling:    r.WriteIndicate,
		ReadSignallingReg:  false,
		WriteSignallingReg: r.WriteIndicate,
		Clk:                hwlib.Clk,
		Reset:              hwlib.Reset,
		CS:                 cs,
		Read:               hwlib.Read,
		Write:              hwlib.Write,
		BE:                 be,
	}
	if r.WriteIndicate {
		sig.WriteSignal = hdl.Select(bg.outI(), UpdateField(r))
	}
	if r.ReadIndicate {
		sig.ReadSignal = hdl.Select(bg.outI(), ReadField(r))
	}
	w.Comment(ind, hdl.Const(r.Name)+" access signalling")
	bg.instance(ind, r, r.Name+"_access_signaler_comp", sig)
}
