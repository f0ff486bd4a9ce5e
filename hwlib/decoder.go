// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/regmap"

// AddressDecoder binds an address_decoder component.
//
//	Generics: address_width, address_entries, addr_vect, registered_out, reset_polarity
//	Inputs: clk_sys, res_n, address, enable
//	Outputs: addr_dec
//	Function: addr_dec[i] = enable && address == addr_vect[i]
//
type AddressDecoder struct {
	AddressWidth   int    `hw:"generic,address_width"`
	AddressEntries int    `hw:"generic,address_entries"`
	AddrVect       string `hw:"generic,addr_vect"`
	RegisteredOut  bool   `hw:"generic,registered_out"`
	ResetPolarity  string `hw:"generic,reset_polarity"`

	Clk     string `hw:"port,clk_sys"`
	Reset   string `hw:"port,res_n"`
	Address string `hw:"port,address"`
	Enable  string `hw:"port,enable"`
	Select  string `hw:"port,addr_dec"`
}

var addressDecoder = mustLoad("address_decoder.vhd", (*AddressDecoder)(nil))

// Spec returns the slot schema of address_decoder.
//
func (*AddressDecoder) Spec() *regmap.Spec { return addressDecoder.spec }
