/*
Package regmap provides the model and the layout rules used to generate VHDL
register maps from an address map description.

An AddressMap holds blocks of registers, each register made of bit fields.
The Layout type answers the word level queries of the generators (word
spans, registers in a word, presence parameters) through the Schema
interface, and the package level functions derive everything else from it:
address vectors, byte enables, data slices and the data, reset and
autoclear masks of registers.

Hardware components are described by a Spec, the slot schema of a VHDL
template. Binding a Spec to expressions yields an Instance; a binding that
names an unknown slot or leaves a required one unbound fails. Bindings are
usually written as structs whose fields are tagged with the slot they bind:

	type decoder struct {
		Width   int    `hw:"generic,address_width"`
		Address string `hw:"port,address"`
	}

	inst, err := regmap.Bind(spec, "decoder_comp", &decoder{Width: 4, Address: "address(3 downto 0)"})

The rtl package renders register maps, the hwlib package provides the
component templates, and the mapfile package loads address maps from
IP-XACT, TOML or MessagePack files.

*/
package regmap
