// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/regmap"

// AccessSignaler binds an access_signaler component.
//
//	Generics: reset_polarity, data_width, read_signalling, write_signalling,
//	          read_signalling_reg, write_signalling_reg
//	Inputs: clk_sys, res_n, cs, read, write, be
//	Outputs: write_signal, read_signal
//	Function: write_signal = cs && write && be != 0
//	          read_signal = cs && read && be != 0
//
type AccessSignaler struct {
	ResetPolarity      string `hw:"generic,reset_polarity"`
	DataWidth          int    `hw:"generic,data_width"`
	ReadSignalling     bool   `hw:"generic,read_signalling"`
	WriteSignalling    bool   `hw:"generic,write_signalling"`
	ReadSignallingReg  bool   `hw:"generic,read_signalling_reg"`
	WriteSignallingReg bool   `hw:"generic,write_signalling_reg"`

	Clk         string `hw:"port,clk_sys"`
	Reset       string `hw:"port,res_n"`
	CS          string `hw:"port,cs"`
	Read        string `hw:"port,read"`
	Write       string `hw:"port,write"`
	BE          string `hw:"port,be"`
	WriteSignal string `hw:"port,write_signal"`
	ReadSignal  string `hw:"port,read_signal"`
}

var accessSignaler = mustLoad("access_signaler.vhd", (*AccessSignaler)(nil))

// Spec returns the slot schema of access_signaler.
//
func (*AccessSignaler) Spec() *regmap.Spec { return accessSignaler.spec }
