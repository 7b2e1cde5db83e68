package minipng

import (
	"bytes"
	"io/ioutil"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ReadFile returns the contents of file, decompressing it first if it is a
// zstd frame. The result is otherwise returned as-is for Parse or Load.
func ReadFile(file string) ([]byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(b, zstdMagic) {
		return b, nil
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(b, nil)
}
