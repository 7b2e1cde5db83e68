package minipng

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	want := file(header(1, 1, Greyscale), block(tagComment, []byte("hi")), block(tagData, []byte{7}))

	plain := filepath.Join(dir, "plain.mp")
	require.NoError(t, ioutil.WriteFile(plain, want, 0o644))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := filepath.Join(dir, "compressed.mp")
	require.NoError(t, ioutil.WriteFile(compressed, enc.EncodeAll(want, nil), 0o644))
	require.NoError(t, enc.Close())

	for _, name := range []string{plain, compressed} {
		b, err := ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, want, b, name)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.mp"))
	assert.Error(t, err)
}
