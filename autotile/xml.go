package autotile

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

type xmlData struct {
	XMLName  xml.Name     `xml:"Data"`
	Tilesets []xmlTileset `xml:"Tileset"`
}

type xmlTileset struct {
	ID      string   `xml:"id,attr"`
	Copy    string   `xml:"copy,attr"`
	Path    string   `xml:"path,attr"`
	Ignores string   `xml:"ignores,attr"`
	Sets    []xmlSet `xml:"set"`
}

type xmlSet struct {
	Mask  string `xml:"mask,attr"`
	Tiles string `xml:"tiles,attr"`
}

func singleChar(attr, value string) (byte, error) {
	if len(value) != 1 {
		return 0, fmt.Errorf("%w: %s %q is not a single character", ErrInvalidDefinition, attr, value)
	}
	return value[0], nil
}

// ReadXML parses tileset markup:
//
//	<Data>
//	  <Tileset id="1" path="dirt" ignores="*">
//	    <set mask="x0x-111-x1x" tiles="0,0; 1,0"/>
//	  </Tileset>
//	  <Tileset id="3" copy="1" path="snow"/>
//	</Data>
func ReadXML(r io.Reader) ([]Definition, error) {
	var data xmlData
	if err := xml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	defs := make([]Definition, 0, len(data.Tilesets))
	for _, ts := range data.Tilesets {
		id, err := singleChar("id", ts.ID)
		if err != nil {
			return nil, err
		}
		def := Definition{ID: id, Path: ts.Path, Ignores: ts.Ignores}
		if ts.Copy != "" {
			if def.Copy, err = singleChar("copy", ts.Copy); err != nil {
				return nil, err
			}
		}
		for _, set := range ts.Sets {
			def.Rules = append(def.Rules, RuleDef{Mask: set.Mask, Tiles: set.Tiles})
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadFile reads tileset markup from filePath and builds its Ruleset.
func LoadFile(filePath string) (*Ruleset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := ReadXML(f)
	if err != nil {
		return nil, err
	}
	return NewRuleset(defs)
}
