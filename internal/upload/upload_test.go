package upload

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	raw := []byte("%PDF-1.4 fake invoice")
	encoded := base64.StdEncoding.EncodeToString(raw)

	got, err := DecodeDataURI("data:application/pdf;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	// Bare base64 without the data: prefix is accepted too.
	got, err = DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = DecodeDataURI("data:application/pdf;base64")
	assert.ErrorIs(t, err, ErrBadPayload, "a data URI needs a comma")

	_, err = DecodeDataURI("!!not base64!!")
	assert.ErrorIs(t, err, ErrBadPayload)
}

func TestSaveWritesDecodedBytes(t *testing.T) {
	s, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	raw := []byte("invoice body")
	path, err := s.Save("invoice.pdf", base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, stored)
	assert.True(t, strings.HasSuffix(path, "_invoice.pdf"), "stored name keeps the original filename")
}

func TestSaveSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSaver(dir)
	require.NoError(t, err)

	path, err := s.Save("../../etc/passwd", base64.StdEncoding.EncodeToString([]byte("x")))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path), "a hostile filename must not escape the uploads directory")
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	s, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("doc.txt", base64.StdEncoding.EncodeToString([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(path))
	require.NoError(t, s.Remove(path), "removing twice is not an error")
	require.NoError(t, s.Remove(""), "an empty path is a no-op")
}
