// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mapfile

import (
	"io"

	"github.com/db47h/regmap"
	"github.com/vmihailenco/msgpack/v5"
)

func decodeMsgPack(r io.Reader) ([]*regmap.AddressMap, error) {
	var doc document
	dec := msgpack.NewDecoder(r)
	dec.DisallowUnknownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Maps, nil
}

func encodeMsgPack(w io.Writer, doc *document) error {
	return msgpack.NewEncoder(w).Encode(doc)
}
