package players

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

//go:embed schema.sql
var schema string

// SQLiteRepository persists gladiators in a single SQLite table. Inventory,
// equipped slots and points are stored as JSON columns.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the SQLite handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get loads one gladiator
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT player_id, name, race_id, points, level, experience, gold, unspent_points,
		        wins, losses, inventory, equipped, created_at, updated_at
		   FROM gladiators WHERE player_id = ?`, input.PlayerID)

	var (
		g                           arena.Gladiator
		points, inventory, equipped string
		createdAt, updatedAt        int64
	)
	err := row.Scan(&g.PlayerID, &g.Name, &g.RaceID, &points, &g.Level, &g.Experience, &g.Gold,
		&g.UnspentPoints, &g.Wins, &g.Losses, &inventory, &equipped, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get gladiator for player %s", input.PlayerID)
	}

	if err := json.Unmarshal([]byte(points), &g.Points); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal points")
	}
	if err := json.Unmarshal([]byte(inventory), &g.Inventory); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal inventory")
	}
	if err := json.Unmarshal([]byte(equipped), &g.Equipped); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal equipped items")
	}
	g.CreatedAt = fromMillis(createdAt)
	g.UpdatedAt = fromMillis(updatedAt)

	return &GetOutput{Gladiator: &g}, nil
}

// Save upserts one gladiator
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	g := input.Gladiator

	points, err := json.Marshal(g.Points)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal points")
	}
	inventory, err := json.Marshal(nonNilStrings(g.Inventory))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal inventory")
	}
	equipped := g.Equipped
	if equipped == nil {
		equipped = map[arena.Slot]string{}
	}
	equippedJSON, err := json.Marshal(equipped)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal equipped items")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO gladiators (
		   player_id, name, race_id, points, level, experience, gold, unspent_points,
		   wins, losses, inventory, equipped, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   name = excluded.name,
		   race_id = excluded.race_id,
		   points = excluded.points,
		   level = excluded.level,
		   experience = excluded.experience,
		   gold = excluded.gold,
		   unspent_points = excluded.unspent_points,
		   wins = excluded.wins,
		   losses = excluded.losses,
		   inventory = excluded.inventory,
		   equipped = excluded.equipped,
		   created_at = excluded.created_at,
		   updated_at = excluded.updated_at`,
		g.PlayerID, g.Name, g.RaceID, string(points), g.Level, g.Experience, g.Gold, g.UnspentPoints,
		g.Wins, g.Losses, string(inventory), string(equippedJSON), toMillis(g.CreatedAt), toMillis(g.UpdatedAt),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", g.PlayerID)
	}

	return &SaveOutput{Gladiator: g.Clone()}, nil
}

// Delete removes one gladiator
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM gladiators WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete gladiator for player %s", input.PlayerID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
