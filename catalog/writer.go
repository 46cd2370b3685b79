package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/eak1mov/go-libmaps/tile"
)

// Writer fills a new catalog database.
type Writer struct {
	db             *sql.DB
	mapStmt        *sql.Stmt
	roomStmt       *sql.Stmt
	placementsStmt *sql.Stmt
	logger         *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

const schema = `
	CREATE TABLE metadata (name TEXT, value TEXT);
	CREATE TABLE maps (
		map_id INTEGER PRIMARY KEY,
		package TEXT,
		fillers INTEGER
	);
	CREATE TABLE rooms (
		map_id INTEGER,
		name TEXT,
		x INTEGER,
		y INTEGER,
		width INTEGER,
		height INTEGER,
		entities INTEGER,
		triggers INTEGER
	);
	CREATE TABLE placements (
		map_id INTEGER,
		room TEXT,
		layer TEXT,
		cell_code INTEGER,
		cell_x INTEGER,
		cell_y INTEGER,
		material TEXT,
		tile_x INTEGER,
		tile_y INTEGER,
		path TEXT
	);
`

// NewWriter creates the catalog schema in a new database at filePath.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	if _, err = db.Exec(schema); err != nil {
		return nil, err
	}

	for k, v := range config.Metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	w := &Writer{db: db, logger: config.Logger}
	w.mapStmt, err = db.Prepare("INSERT INTO maps (package, fillers) VALUES (?, ?)")
	if err != nil {
		return nil, err
	}
	w.roomStmt, err = db.Prepare("INSERT INTO rooms (map_id, name, x, y, width, height, entities, triggers) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		w.mapStmt.Close()
		return nil, err
	}
	w.placementsStmt, err = db.Prepare("INSERT INTO placements (map_id, room, layer, cell_code, cell_x, cell_y, material, tile_x, tile_y, path) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		w.mapStmt.Close()
		w.roomStmt.Close()
		return nil, err
	}

	return w, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.mapStmt.Close(), w.roomStmt.Close(), w.placementsStmt.Close(), w.db.Close())
}

// WriteMap records m and its rooms in one transaction and returns the new map id.
func (w *Writer) WriteMap(m *mapdata.Map) (int64, error) {
	tx, err := w.db.Begin()
	if err != nil {
		return 0, err
	}

	res, err := tx.Stmt(w.mapStmt).Exec(m.Package, len(m.Fillers))
	if err != nil {
		return 0, errors.Join(err, tx.Rollback())
	}
	mapID, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Join(err, tx.Rollback())
	}

	stmt := tx.Stmt(w.roomStmt)
	for _, r := range m.Rooms {
		b := r.Bounds
		if _, err := stmt.Exec(mapID, r.Name, b.X, b.Y, b.Width, b.Height, len(r.Entities), len(r.Triggers)); err != nil {
			return 0, errors.Join(fmt.Errorf("room %q: %w", r.Name, err), tx.Rollback())
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	w.logger.Debug("libmaps: map written", "package", m.Package, "id", mapID, "rooms", len(m.Rooms))
	return mapID, nil
}

// WriteLayer records the placements of one rendered room layer.
func (w *Writer) WriteLayer(mapID int64, room *mapdata.Room, layer mapdata.Layer, rendered *autotile.Layer) error {
	width, height := room.GridSize()

	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	stmt := tx.Stmt(w.placementsStmt)
	for _, p := range rendered.Placements {
		code, err := tile.EncodeCell(p.Cell, width, height)
		if err != nil {
			return errors.Join(err, tx.Rollback())
		}
		_, err = stmt.Exec(mapID, room.Name, layer.String(), int64(code), p.Cell.X, p.Cell.Y,
			string(p.Material), p.Tile.X, p.Tile.Y, p.Path)
		if err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

// Finalize creates the lookup indices once all maps are written.
func (w *Writer) Finalize() error {
	w.logger.Debug("libmaps: creating index")
	_, err := w.db.Exec(`
		CREATE UNIQUE INDEX room_index ON rooms (map_id, name);
		CREATE UNIQUE INDEX placement_index ON placements (map_id, room, layer, cell_code);
	`)
	w.logger.Debug("libmaps: done!")
	return err
}
