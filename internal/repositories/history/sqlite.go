package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id TEXT NOT NULL,
	winner TEXT NOT NULL,
	rounds INTEGER NOT NULL,
	players TEXT NOT NULL,
	date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_game_history_device ON game_history (device_id, date DESC);
`

// Config holds configuration for the SQLite history repository
type Config struct {
	// DB is an open SQLite handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed history repository, bootstrapping
// the schema if needed
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db handle cannot be nil")
	}

	if err := cfg.DB.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// AppendGame records one finished game
func (r *sqliteRepository) AppendGame(ctx context.Context, input *AppendGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.DeviceID == "" {
		return errors.New("record device ID cannot be empty")
	}

	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	playersJSON, err := json.Marshal(record.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO game_history (device_id, winner, rounds, players, date) VALUES (?, ?, ?, ?, ?)`,
		record.DeviceID, record.Winner, record.Rounds, string(playersJSON),
		record.Date.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}

	return nil
}

// ListGames retrieves a device's finished games, newest first
func (r *sqliteRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.DeviceID == "" {
		return nil, errors.New("input and device ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_id, winner, rounds, players, date
		 FROM game_history WHERE device_id = ? ORDER BY date DESC, id DESC`,
		input.DeviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	output := &ListGamesOutput{}
	for rows.Next() {
		var record models.HistoryRecord
		var playersJSON, date string

		if err := rows.Scan(&record.ID, &record.DeviceID, &record.Winner,
			&record.Rounds, &playersJSON, &date); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}

		if err := json.Unmarshal([]byte(playersJSON), &record.Players); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players: %w", err)
		}

		record.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record date: %w", err)
		}

		output.Records = append(output.Records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return output, nil
}

// ClearGames deletes all of a device's finished games
func (r *sqliteRepository) ClearGames(ctx context.Context, input *ClearGamesInput) error {
	if input == nil || input.DeviceID == "" {
		return errors.New("input and device ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM game_history WHERE device_id = ?`, input.DeviceID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}
