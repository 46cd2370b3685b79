// Package catalog stores decoded maps, their rooms and autotiled placements
// in an sqlite database.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/eak1mov/go-libmaps/tile"
)

type MapInfo struct {
	ID      int64
	Package string
	Fillers int
}

type RoomInfo struct {
	Name     string
	Bounds   mapdata.Rect
	Entities int
	Triggers int
}

type Reader struct {
	db *sql.DB
}

// NewReader opens the catalog at filePath read-only.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Reader{db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

// ReadMetadata returns the name/value pairs given to WithMetadata.
func (r *Reader) ReadMetadata() (map[string]string, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("metadata: %w", err)
		}
		metadata[name] = value
	}
	return metadata, rows.Err()
}

func (r *Reader) Maps() ([]MapInfo, error) {
	rows, err := r.db.Query("SELECT map_id, package, fillers FROM maps ORDER BY map_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maps []MapInfo
	for rows.Next() {
		var m MapInfo
		if err := rows.Scan(&m.ID, &m.Package, &m.Fillers); err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return maps, rows.Err()
}

// Rooms lists the rooms of a map in declaration order.
func (r *Reader) Rooms(mapID int64) ([]RoomInfo, error) {
	rows, err := r.db.Query("SELECT name, x, y, width, height, entities, triggers FROM rooms WHERE map_id = ? ORDER BY rowid", mapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []RoomInfo
	for rows.Next() {
		var ri RoomInfo
		b := &ri.Bounds
		if err := rows.Scan(&ri.Name, &b.X, &b.Y, &b.Width, &b.Height, &ri.Entities, &ri.Triggers); err != nil {
			return nil, err
		}
		rooms = append(rooms, ri)
	}
	return rooms, rows.Err()
}

// VisitPlacements calls visitor for every placement of a room layer, in
// Hilbert order of the cells.
func (r *Reader) VisitPlacements(mapID int64, room string, layer mapdata.Layer, visitor func(autotile.Placement) error) error {
	rows, err := r.db.Query(`
		SELECT cell_x, cell_y, material, tile_x, tile_y, path FROM placements
		WHERE map_id = ? AND room = ? AND layer = ?
		ORDER BY cell_code`, mapID, room, layer.String())
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p autotile.Placement
		var material string
		if err := rows.Scan(&p.Cell.X, &p.Cell.Y, &material, &p.Tile.X, &p.Tile.Y, &p.Path); err != nil {
			return err
		}
		if len(material) != 1 {
			return fmt.Errorf("invalid material %q at %v", material, p.Cell)
		}
		p.Material = material[0]

		if err := visitor(p); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}

// ErrRoomNotFound is returned by PlacementGrid for a room the map does not have.
var ErrRoomNotFound = errors.New("room not found")

// PlacementGrid returns the placements of a room layer laid out on the room grid.
// Cells without a placement hold the zero Placement.
func (r *Reader) PlacementGrid(mapID int64, room string, layer mapdata.Layer) (*tile.Grid[autotile.Placement], error) {
	var ri RoomInfo
	b := &ri.Bounds
	err := r.db.QueryRow("SELECT x, y, width, height FROM rooms WHERE map_id = ? AND name = ?", mapID, room).
		Scan(&b.X, &b.Y, &b.Width, &b.Height)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}
	if err != nil {
		return nil, err
	}

	g := tile.NewGrid(b.Width/tile.Size, b.Height/tile.Size, autotile.Placement{})
	err = r.VisitPlacements(mapID, room, layer, func(p autotile.Placement) error {
		g.Set(p.Cell.X, p.Cell.Y, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}
