package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
}

func TestReadYAMLFile(t *testing.T) {
	type A struct {
		B string `yaml:"b"`
	}

	t.Run("not_found_not_required", func(t *testing.T) {
		var a A
		err := ReadYAMLFile(filepath.Join(t.TempDir(), "none.yaml"), false, &a)
		assert.NoError(t, err)
	})

	t.Run("not_found_required", func(t *testing.T) {
		var a A
		err := ReadYAMLFile(filepath.Join(t.TempDir(), "none.yaml"), true, &a)
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "a.yaml")
		assert.NoError(t, os.WriteFile(filePath, []byte("b: test\n"), 0o644))

		var a A
		err := ReadYAMLFile(filePath, true, &a)
		assert.NoError(t, err)
		assert.Equal(t, "test", a.B)
	})

	t.Run("empty_file", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "empty.yaml")
		assert.NoError(t, os.WriteFile(filePath, nil, 0o644))

		var a A
		assert.NoError(t, ReadYAMLFile(filePath, true, &a))
		assert.Equal(t, "", a.B)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "bad.yaml")
		assert.NoError(t, os.WriteFile(filePath, []byte("b: [unclosed\n"), 0o644))

		var a A
		assert.Error(t, ReadYAMLFile(filePath, true, &a))
	})
}

type mockDecoder struct {
	err error
}

func (m mockDecoder) Decode(interface{}) error {
	return m.err
}

func TestReadFile_DecoderError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "x.yaml")
	assert.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	err := ReadFile(filePath, true, nil, func(r io.Reader) Decoder {
		return mockDecoder{err: io.ErrUnexpectedEOF}
	})
	assert.Error(t, err)
}
