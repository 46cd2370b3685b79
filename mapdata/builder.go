package mapdata

import (
	"fmt"
	"maps"
	"strings"

	"github.com/eak1mov/go-libmaps/container"
)

// hoisted attributes are moved into typed fields and dropped from Entity.Raw.
var hoisted = map[string]bool{
	"x":       true,
	"y":       true,
	"id":      true,
	"originX": true,
	"originY": true,
	"width":   true,
	"height":  true,
}

// Build converts a decoded document into a Map.
func Build(doc *container.Document) (*Map, error) {
	root := doc.Root

	levels := root.Child("levels")
	if levels == nil {
		return nil, &MissingElementError{Name: "levels", Parent: root.Name}
	}
	style := root.Child("Style")
	if style == nil {
		return nil, &MissingElementError{Name: "Style", Parent: root.Name}
	}

	m := &Map{
		Package: doc.Package,
		Style:   buildStyle(style),
	}

	for level := range levels.ChildrenNamed("level") {
		room, err := buildRoom(level)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", len(m.Rooms), err)
		}
		m.Rooms = append(m.Rooms, room)
	}

	if filler := root.Child("Filler"); filler != nil {
		for rect := range filler.ChildrenNamed("rect") {
			r := attrReader{el: rect}
			m.Fillers = append(m.Fillers, Rect{
				X:      read[int](&r, "x"),
				Y:      read[int](&r, "y"),
				Width:  read[int](&r, "w"),
				Height: read[int](&r, "h"),
			})
			if r.err != nil {
				return nil, fmt.Errorf("filler %d: %w", len(m.Fillers)-1, r.err)
			}
		}
	}

	if meta := root.Child("meta"); meta != nil {
		var err error
		if m.Meta, err = buildMeta(meta); err != nil {
			return nil, fmt.Errorf("meta: %w", err)
		}
	}

	return m, nil
}

func buildRoom(el *container.Element) (Room, error) {
	r := attrReader{el: el}
	room := Room{
		Name: strings.TrimPrefix(read[string](&r, "name"), "lvl_"),
		Bounds: Rect{
			X:      read[int](&r, "x"),
			Y:      read[int](&r, "y"),
			Width:  read[int](&r, "width"),
			Height: read[int](&r, "height"),
		},
		Dark:                  readOr(&r, "dark", false),
		Space:                 readOr(&r, "space", false),
		Underwater:            readOr(&r, "underwater", false),
		Whisper:               readOr(&r, "whisper", false),
		DisableDownTransition: readOr(&r, "disableDownTransition", false),
		Music:                 readOr(&r, "music", ""),
		AltMusic:              readOr(&r, "alt_music", ""),
		Ambience:              readOr(&r, "ambience", ""),
		WindPattern:           readOr(&r, "windPattern", ""),
		Color:                 readOr(&r, "c", 0),
		CameraOffset: Vec2{
			X: readOr(&r, "cameraOffsetX", 0.0),
			Y: readOr(&r, "cameraOffsetY", 0.0),
		},
	}
	if r.err != nil {
		return Room{}, r.err
	}

	wrap := func(err error) error {
		return fmt.Errorf("room %q: %w", room.Name, err)
	}

	layers := []*string{&room.Solids, &room.Background, &room.ObjectTiles, &room.FgScenery, &room.BgScenery}
	for i, dst := range layers {
		child := el.Child(layerElements[i])
		if child == nil {
			continue
		}
		text, err := AttrOr(child, "innerText", "")
		if err != nil {
			return Room{}, wrap(err)
		}
		*dst = text
	}

	var err error
	if room.Entities, err = buildEntities(el.Child("entities")); err != nil {
		return Room{}, wrap(err)
	}
	entities, err := buildEntities(el.Child("triggers"))
	if err != nil {
		return Room{}, wrap(err)
	}
	for _, e := range entities {
		room.Triggers = append(room.Triggers, Trigger(e))
	}
	if room.FgDecals, err = buildDecals(el.Child("fgdecals")); err != nil {
		return Room{}, wrap(err)
	}
	if room.BgDecals, err = buildDecals(el.Child("bgdecals")); err != nil {
		return Room{}, wrap(err)
	}

	return room, nil
}

func buildEntities(parent *container.Element) ([]Entity, error) {
	if parent == nil {
		return nil, nil
	}
	entities := make([]Entity, 0, len(parent.Children))
	for _, el := range parent.Children {
		e, err := buildEntity(el)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", el.Name, len(entities), err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func buildEntity(el *container.Element) (Entity, error) {
	r := attrReader{el: el}
	e := Entity{
		Name:     el.Name,
		Position: Vec2{X: read[float64](&r, "x"), Y: read[float64](&r, "y")},
		Width:    int(readOr(&r, "width", 0.0)),
		Height:   int(readOr(&r, "height", 0.0)),
		Origin:   Vec2{X: readOr(&r, "originX", 0.0), Y: readOr(&r, "originY", 0.0)},
	}
	if _, ok := el.Attr("id"); ok {
		e.ID = read[int](&r, "id")
		e.HasID = true
	}
	for node := range el.ChildrenNamed("node") {
		nr := attrReader{el: node}
		e.Nodes = append(e.Nodes, Vec2{X: read[float64](&nr, "x"), Y: read[float64](&nr, "y")})
		if nr.err != nil {
			return Entity{}, nr.err
		}
	}
	if r.err != nil {
		return Entity{}, r.err
	}

	e.Raw = maps.Clone(el.Attributes)
	maps.DeleteFunc(e.Raw, func(name string, _ container.Value) bool {
		return hoisted[name]
	})
	return e, nil
}

func buildDecals(parent *container.Element) ([]Decal, error) {
	if parent == nil {
		return nil, nil
	}
	decals := make([]Decal, 0, len(parent.Children))
	for _, el := range parent.Children {
		r := attrReader{el: el}
		decals = append(decals, Decal{
			Texture:  read[string](&r, "texture"),
			Position: Vec2{X: read[float64](&r, "x"), Y: read[float64](&r, "y")},
			Scale:    Vec2{X: readOr(&r, "scaleX", 1.0), Y: readOr(&r, "scaleY", 1.0)},
			Rotation: readOr(&r, "rotation", 0.0),
			Color:    readOr(&r, "color", ""),
		})
		if r.err != nil {
			return nil, fmt.Errorf("decal %d: %w", len(decals)-1, r.err)
		}
	}
	return decals, nil
}

func buildStyle(el *container.Element) Style {
	return Style{
		Foregrounds: buildStylegrounds(el.Child("Foregrounds")),
		Backgrounds: buildStylegrounds(el.Child("Backgrounds")),
	}
}

func buildStylegrounds(parent *container.Element) []Styleground {
	if parent == nil {
		return nil
	}
	result := make([]Styleground, 0, len(parent.Children))
	for _, el := range parent.Children {
		result = append(result, Styleground{
			Kind:       el.Name,
			Attributes: maps.Clone(el.Attributes),
			Children:   buildStylegrounds(el),
		})
	}
	return result
}

func buildMeta(el *container.Element) (Meta, error) {
	r := attrReader{el: el}
	meta := Meta{
		Icon:            readOr(&r, "Icon", ""),
		IntroType:       readOr(&r, "IntroType", ""),
		ForegroundTiles: readOr(&r, "ForegroundTiles", ""),
		BackgroundTiles: readOr(&r, "BackgroundTiles", ""),
		AnimatedTiles:   readOr(&r, "AnimatedTiles", ""),
		Sprites:         readOr(&r, "Sprites", ""),
		Portraits:       readOr(&r, "Portraits", ""),
		Interlude:       readOr(&r, "Interlude", false),
		Dreaming:        readOr(&r, "Dreaming", false),
	}
	if mode := el.Child("mode"); mode != nil {
		mr := attrReader{el: mode}
		meta.Mode = Mode{
			StartLevel:     readOr(&mr, "StartLevel", ""),
			Inventory:      readOr(&mr, "Inventory", ""),
			HeartIsEnd:     readOr(&mr, "HeartIsEnd", false),
			SeekerSlowdown: readOr(&mr, "SeekerSlowdown", false),
		}
		if mr.err != nil {
			return Meta{}, mr.err
		}
	}
	return meta, r.err
}
