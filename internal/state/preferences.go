package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/sortviz/internal/db"
)

// Preferences are the settings remembered between sessions.
type Preferences struct {
	Algorithm string // algorithm id
	Speed     int
	Range     int
	InputMode string // "random" or "explicit"
	Input     string // last explicit input text
	Theme     string // "dark" or "light"
}

func getPreferences(db *sql.DB) (*Preferences, error) {
	row := db.QueryRow(`
		SELECT algorithm, speed, value_range, input_mode, input, theme
		FROM preferences WHERE id = 1
	`)

	var algorithm, inputMode, input, theme sql.NullString
	var speed, valueRange sql.NullInt64

	err := row.Scan(&algorithm, &speed, &valueRange, &inputMode, &input, &theme)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved preferences is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &Preferences{
		Algorithm: dbutil.NullStringValue(algorithm),
		Speed:     dbutil.NullInt64Value(speed, 0),
		Range:     dbutil.NullInt64Value(valueRange, 0),
		InputMode: dbutil.NullStringValue(inputMode),
		Input:     dbutil.NullStringValue(input),
		Theme:     dbutil.NullStringValue(theme),
	}, nil
}

func savePreferences(db *sql.DB, p Preferences) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, algorithm, speed, value_range, input_mode, input, theme, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			algorithm = excluded.algorithm,
			speed = excluded.speed,
			value_range = excluded.value_range,
			input_mode = excluded.input_mode,
			input = excluded.input,
			theme = excluded.theme,
			updated_at = excluded.updated_at
	`, p.Algorithm, p.Speed, p.Range, p.InputMode, p.Input, p.Theme, time.Now().Unix())

	return err
}
