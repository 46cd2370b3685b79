// Package mapdata builds typed map records from a decoded container tree.
package mapdata

import (
	"github.com/eak1mov/go-libmaps/container"
	"github.com/eak1mov/go-libmaps/tile"
)

type Vec2 struct {
	X float64
	Y float64
}

// Rect is a rectangle in pixels, or in tiles for fillers.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

type Map struct {
	Package string
	Rooms   []Room // document order
	Fillers []Rect
	Style   Style
	Meta    Meta
}

// Room returns the room with the given name.
func (m *Map) Room(name string) (*Room, bool) {
	for i := range m.Rooms {
		if m.Rooms[i].Name == name {
			return &m.Rooms[i], true
		}
	}
	return nil, false
}

type Meta struct {
	Icon            string
	IntroType       string
	ForegroundTiles string
	BackgroundTiles string
	AnimatedTiles   string
	Sprites         string
	Portraits       string
	Interlude       bool
	Dreaming        bool
	Mode            Mode
}

type Mode struct {
	StartLevel     string
	Inventory      string
	HeartIsEnd     bool
	SeekerSlowdown bool
}

type Style struct {
	Foregrounds []Styleground
	Backgrounds []Styleground
}

// Styleground is a parallax layer or effect. Groups ("apply") carry children.
type Styleground struct {
	Kind       string
	Attributes map[string]container.Value
	Children   []Styleground
}

// Layer names one of the raw tile layers of a room.
type Layer int

const (
	LayerSolids Layer = iota
	LayerBackground
	LayerObjects
	LayerFgScenery
	LayerBgScenery
)

var layerElements = [...]string{
	LayerSolids:     "solids",
	LayerBackground: "bg",
	LayerObjects:    "objtiles",
	LayerFgScenery:  "fgtiles",
	LayerBgScenery:  "bgtiles",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerElements) {
		return "unknown"
	}
	return layerElements[l]
}

type Room struct {
	Name   string
	Bounds Rect

	// Raw tile layers, newline-separated. Solids and Background hold material
	// characters, the others comma-separated sprite indices.
	Solids      string
	Background  string
	ObjectTiles string
	FgScenery   string
	BgScenery   string

	Dark                  bool
	Space                 bool
	Underwater            bool
	Whisper               bool
	DisableDownTransition bool

	Music        string
	AltMusic     string
	Ambience     string
	WindPattern  string
	Color        int
	CameraOffset Vec2

	Entities []Entity
	Triggers []Trigger
	BgDecals []Decal
	FgDecals []Decal
}

// GridSize returns the room size in tiles.
func (r *Room) GridSize() (int, int) {
	return r.Bounds.Width / tile.Size, r.Bounds.Height / tile.Size
}

func (r *Room) Layer(layer Layer) string {
	switch layer {
	case LayerSolids:
		return r.Solids
	case LayerBackground:
		return r.Background
	case LayerObjects:
		return r.ObjectTiles
	case LayerFgScenery:
		return r.FgScenery
	case LayerBgScenery:
		return r.BgScenery
	}
	return ""
}

// Grid parses a material layer (LayerSolids or LayerBackground) to the room size.
func (r *Room) Grid(layer Layer) *tile.Grid[byte] {
	w, h := r.GridSize()
	return tile.ParseGrid(w, h, r.Layer(layer))
}

// Indices parses a sprite index layer (objects or scenery) to the room size.
func (r *Room) Indices(layer Layer) (*tile.Grid[int], error) {
	w, h := r.GridSize()
	return tile.ParseIndices(w, h, r.Layer(layer))
}

// Entity is a placed object. Position is room-local in pixels; Raw keeps the
// attributes not hoisted into fields.
type Entity struct {
	Name     string
	ID       int
	HasID    bool
	Position Vec2
	Width    int
	Height   int
	Origin   Vec2
	Nodes    []Vec2
	Raw      map[string]container.Value
}

type Trigger Entity

type Decal struct {
	Texture  string
	Position Vec2
	Scale    Vec2
	Rotation float64
	Color    string
}
