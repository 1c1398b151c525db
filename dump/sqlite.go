package dump

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/eak1mov/go-cornerstitch/tile"
)

// SQLiteWriter implements tile.Writer storing a snapshot in an SQLite
// database with tables canvas (width, height) and tiles. Rows are inserted as
// tiles arrive; links are stored as tile IDs of the same snapshot, NULL for
// the canvas border.
type SQLiteWriter struct {
	db     *sql.DB
	stmt   *sql.Stmt
	snap   *snapshot
	logger *slog.Logger
}

// NewSQLiteWriter creates a new database at filePath and prepares it for
// writing tiles.
func NewSQLiteWriter(filePath string, width, height int, opts ...Option) (*SQLiteWriter, error) {
	config := newConfig(opts)

	snap, err := newSnapshot(width, height)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE canvas (width INTEGER, height INTEGER);
		CREATE TABLE tiles (
			id INTEGER PRIMARY KEY,
			type TEXT,
			xl INTEGER,
			yl INTEGER,
			xh INTEGER,
			yh INTEGER,
			rt INTEGER,
			tr INTEGER,
			bl INTEGER,
			lb INTEGER,
			hilbert INTEGER
		);
	`)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("INSERT INTO canvas (width, height) VALUES (?, ?)", width, height)
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare(`INSERT INTO tiles (id, type, xl, yl, xh, yh, rt, tr, bl, lb, hilbert)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}

	return &SQLiteWriter{db, stmt, snap, config.Logger}, nil
}

func (w *SQLiteWriter) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

func nullableID(id tile.ID) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != tile.None}
}

func (w *SQLiteWriter) WriteTile(id tile.ID, t tile.Tile) error {
	if err := w.snap.add(id, t); err != nil {
		return err
	}
	_, err := w.stmt.Exec(
		int64(id), t.Type.String(),
		t.XLow(), t.YLow(), t.XHigh(), t.YHigh(),
		nullableID(t.Top), nullableID(t.Right), nullableID(t.Left), nullableID(t.Bottom),
		int64(w.snap.codes[id]),
	)
	return err
}

func (w *SQLiteWriter) Finalize() error {
	if _, err := w.snap.finish(); err != nil {
		return err
	}

	w.logger.Debug("dump: creating index")
	_, err := w.db.Exec("CREATE UNIQUE INDEX tile_order ON tiles (hilbert)")

	w.logger.Debug("dump: done!")
	return err
}
