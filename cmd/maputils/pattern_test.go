package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/stretchr/testify/require"
)

func TestFormatPattern(t *testing.T) {
	require.Equal(t, "out/a-00.solids.tsv", formatPattern("out/{room}.{layer}.tsv", "a-00", mapdata.LayerSolids))
	require.Equal(t, "out/sub_room.tsv", formatPattern("out/{room}.tsv", "sub/room", mapdata.LayerBackground))
	require.Equal(t, "out.tsv", formatPattern("out.tsv", "a-00", mapdata.LayerSolids))
}

func TestValidatePattern(t *testing.T) {
	require.NoError(t, validatePattern("out.tsv"))
	require.NoError(t, validatePattern("{room}.tsv"))
	require.NoError(t, validatePattern("{room}/{layer}.tsv"))
	require.ErrorIs(t, validatePattern("{layer}.tsv"), errInvalidPattern)
	require.ErrorIs(t, validatePattern("{room}/{room}.tsv"), errInvalidPattern)
}

func TestParseEncoding(t *testing.T) {
	for _, text := range []string{"", "u16", "uvarint"} {
		_, err := parseEncoding(text)
		require.NoError(t, err, text)
	}
	_, err := parseEncoding("utf8")
	require.Error(t, err)
}

func TestOutputs(t *testing.T) {
	dir := t.TempDir()
	out := &outputs{pattern: filepath.Join(dir, "{room}", "{layer}.tsv"), writers: make(map[string]*bufio.Writer)}

	for _, layer := range []mapdata.Layer{mapdata.LayerSolids, mapdata.LayerBackground, mapdata.LayerSolids} {
		w, err := out.writer("a-00", layer)
		require.NoError(t, err)
		fmt.Fprintln(w, layer)
	}
	require.NoError(t, out.Close())
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "a-00", "solids.tsv"))
	require.NoError(t, err)
	require.Equal(t, "solids\nsolids\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "a-00", "bg.tsv"))
	require.NoError(t, err)
	require.Equal(t, "bg\n", string(data))
}
