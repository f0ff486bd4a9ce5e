// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/regmap"

// DataMux binds a data_mux component, the read data multiplexer.
//
//	Generics: data_out_width, data_in_width, sel_width, sel_base,
//	          registered_out, reset_polarity
//	Inputs: clk_sys, res_n, data_selector, data_in, data_mask, enable
//	Outputs: data_out
//	Function: i = data_selector - sel_base
//	          data_out = data_in[i] & data_mask if 0 <= i < words, else 0
//
type DataMux struct {
	DataOutWidth  int    `hw:"generic,data_out_width"`
	DataInWidth   int    `hw:"generic,data_in_width"`
	SelWidth      int    `hw:"generic,sel_width"`
	SelBase       int    `hw:"generic,sel_base"`
	RegisteredOut string `hw:"generic,registered_out"`
	ResetPolarity string `hw:"generic,reset_polarity"`

	Clk      string `hw:"port,clk_sys"`
	Reset    string `hw:"port,res_n"`
	Selector string `hw:"port,data_selector"`
	DataIn   string `hw:"port,data_in"`
	DataMask string `hw:"port,data_mask"`
	Enable   string `hw:"port,enable"`
	DataOut  string `hw:"port,data_out"`
}

var dataMux = mustLoad("data_mux.vhd", (*DataMux)(nil))

// Spec returns the slot schema of data_mux.
//
func (*DataMux) Spec() *regmap.Spec { return dataMux.spec }
