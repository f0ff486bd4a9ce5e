// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package mapfile loads and saves address maps.
//
// Supported formats are a subset of IP-XACT (IEEE 1685-2009 and 2014), TOML
// and MessagePack. The format of a file is given by its extension.
//
package mapfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/regmap"
	"github.com/pkg/errors"
)

// Format is a file format.
//
type Format int

// Supported formats.
//
const (
	IPXACT Format = iota + 1
	TOML
	MsgPack
)

func (f Format) String() string {
	switch f {
	case IPXACT:
		return "IP-XACT"
	case TOML:
		return "TOML"
	case MsgPack:
		return "MessagePack"
	}
	return "unknown"
}

// FormatOf returns the format of the named file.
//
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".ipxact":
		return IPXACT, nil
	case ".toml":
		return TOML, nil
	case ".msgpack", ".mp":
		return MsgPack, nil
	}
	return 0, errors.Errorf("%s: unsupported file extension", path)
}

// document is the top level structure of TOML and MessagePack files.
type document struct {
	Maps []*regmap.AddressMap `toml:"map" msgpack:"maps"`
}

// Decode reads all address maps from r.
//
func Decode(r io.Reader, f Format) ([]*regmap.AddressMap, error) {
	switch f {
	case IPXACT:
		return decodeIPXACT(r)
	case TOML:
		return decodeTOML(r)
	case MsgPack:
		return decodeMsgPack(r)
	}
	return nil, errors.Errorf("cannot decode %v", f)
}

// Encode writes the address maps ms to w. IP-XACT output is not supported.
//
func Encode(w io.Writer, f Format, ms ...*regmap.AddressMap) error {
	doc := &document{Maps: ms}
	switch f {
	case TOML:
		return encodeTOML(w, doc)
	case MsgPack:
		return encodeMsgPack(w, doc)
	}
	return errors.Errorf("cannot encode %v", f)
}

// LoadAll loads all address maps from the named file.
//
func LoadAll(path string) ([]*regmap.AddressMap, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ms, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if len(ms) == 0 {
		return nil, errors.Errorf("%s: no address map", path)
	}
	return ms, nil
}

// Load loads the address map with the given name from a file. An empty name
// selects the first map of the file.
//
func Load(path, name string) (*regmap.AddressMap, error) {
	ms, err := LoadAll(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return ms[0], nil
	}
	for _, m := range ms {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, errors.Errorf("%s: no address map named %q", path, name)
}

// Save writes the address maps to the named file.
//
func Save(path string, ms ...*regmap.AddressMap) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, ms...); err != nil {
		return errors.Wrap(err, path)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
