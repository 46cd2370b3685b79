package main

import (
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/eak1mov/go-libmaps/container/spec"
	"github.com/eak1mov/go-libmaps/mapdata"
)

func parseEncoding(encoding string) (spec.LengthEncoding, error) {
	switch encoding {
	case "", "u16":
		return spec.LengthU16, nil
	case "uvarint":
		return spec.LengthUvarint, nil
	}
	return 0, fmt.Errorf("invalid string encoding: %q", encoding)
}

func loadMap(filePath, encoding string) (*mapdata.Map, error) {
	enc, err := parseEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return mapdata.ReadFile(filePath, mapdata.WithLengthEncoding(enc), mapdata.WithLogger(slog.Default()))
}

// loadRuleset returns nil for an empty path.
func loadRuleset(filePath string) (*autotile.Ruleset, error) {
	if filePath == "" {
		return nil, nil
	}
	return autotile.LoadFile(filePath)
}

type layerRuleset struct {
	layer   mapdata.Layer
	ruleset *autotile.Ruleset
}

// renderLayers lists the material layers that have a ruleset.
func renderLayers(fg, bg *autotile.Ruleset) []layerRuleset {
	var layers []layerRuleset
	if fg != nil {
		layers = append(layers, layerRuleset{mapdata.LayerSolids, fg})
	}
	if bg != nil {
		layers = append(layers, layerRuleset{mapdata.LayerBackground, bg})
	}
	return layers
}

func renderRoom(room *mapdata.Room, lr layerRuleset, seed uint64) *autotile.Layer {
	rng := autotile.NewRand(autotile.RoomSeed(seed, room.Name+"/"+lr.layer.String()))
	return autotile.RenderGrid(room.Grid(lr.layer), lr.ruleset, rng)
}
