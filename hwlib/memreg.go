// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/regmap"

// MemoryReg binds a memory_reg component, the storage of a writable register.
//
//	Generics: data_width, data_mask, reset_polarity, reset_value, auto_clear
//	Inputs: clk_sys, res_n, data_in, write, cs, w_be
//	Outputs: reg_value
//	Function: on write && cs, reg_value[i] = data_in[i] for bits in data_mask
//	          whose byte is enabled in w_be. auto_clear bits return to 0 on the
//	          next clock cycle.
//
type MemoryReg struct {
	DataWidth     int    `hw:"generic,data_width"`
	DataMask      string `hw:"generic,data_mask"`
	ResetPolarity string `hw:"generic,reset_polarity"`
	ResetValue    string `hw:"generic,reset_value"`
	AutoClear     string `hw:"generic,auto_clear"`

	Clk      string `hw:"port,clk_sys"`
	Reset    string `hw:"port,res_n"`
	DataIn   string `hw:"port,data_in"`
	Write    string `hw:"port,write"`
	CS       string `hw:"port,cs"`
	BE       string `hw:"port,w_be"`
	RegValue string `hw:"port,reg_value"`
}

var memoryReg = mustLoad("memory_reg.vhd", (*MemoryReg)(nil))

// Spec returns the slot schema of memory_reg.
//
func (*MemoryReg) Spec() *regmap.Spec { return memoryReg.spec }
