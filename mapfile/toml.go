// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mapfile

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/regmap"
	"github.com/pkg/errors"
)

func decodeTOML(r io.Reader) ([]*regmap.AddressMap, error) {
	var doc document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		var ks []string
		for _, k := range keys {
			ks = append(ks, k.String())
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(ks, ", "))
	}
	if !meta.IsDefined("map") {
		return nil, errors.New("missing [[map]]")
	}
	for i, m := range doc.Maps {
		if strings.TrimSpace(m.Name) == "" {
			return nil, errors.Errorf("map #%d: missing name", i+1)
		}
	}
	return doc.Maps, nil
}

func encodeTOML(w io.Writer, doc *document) error {
	return toml.NewEncoder(w).Encode(doc)
}
