package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/blackout/internal/models"
)

// ErrNotFound is returned by writes that target a marker that does not exist
var ErrNotFound = errors.New("marker not found")

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS markers (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			surface TEXT NOT NULL DEFAULT '',
			graffiti_type TEXT NOT NULL DEFAULT '',
			rep_earned INTEGER,
			rep_breakdown TEXT,
			distance_from_center REAL,
			likes TEXT NOT NULL DEFAULT '[]',
			comments TEXT NOT NULL DEFAULT '[]',
			is_edited INTEGER NOT NULL DEFAULT 0,
			migrated_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_markers_user ON markers(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_markers_surface ON markers(surface)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const markerColumns = `id, user_id, lat, lng, name, description, surface, graffiti_type,
	rep_earned, rep_breakdown, distance_from_center, likes, comments,
	is_edited, migrated_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMarker(row rowScanner) (*models.Marker, error) {
	var m models.Marker
	var surface, graffiti, likes, comments string
	var repEarned sql.NullInt64
	var breakdown sql.NullString
	var distance sql.NullFloat64
	var migratedAt sql.NullTime

	err := row.Scan(&m.ID, &m.UserID, &m.Position.Lat, &m.Position.Lng,
		&m.Name, &m.Description, &surface, &graffiti,
		&repEarned, &breakdown, &distance, &likes, &comments,
		&m.IsEdited, &migratedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	m.Surface = models.SurfaceType(surface)
	m.GraffitiType = models.GraffitiType(graffiti)
	if repEarned.Valid {
		v := int(repEarned.Int64)
		m.RepEarned = &v
	}
	if breakdown.Valid && breakdown.String != "" {
		var b models.RepBreakdown
		if err := json.Unmarshal([]byte(breakdown.String), &b); err != nil {
			return nil, fmt.Errorf("decode rep_breakdown for %s: %w", m.ID, err)
		}
		m.RepBreakdown = &b
	}
	if distance.Valid {
		v := distance.Float64
		m.DistanceFromCenter = &v
	}
	if migratedAt.Valid {
		t := migratedAt.Time
		m.MigratedAt = &t
	}
	if err := json.Unmarshal([]byte(likes), &m.Likes); err != nil {
		return nil, fmt.Errorf("decode likes for %s: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(comments), &m.Comments); err != nil {
		return nil, fmt.Errorf("decode comments for %s: %w", m.ID, err)
	}
	if m.Likes == nil {
		m.Likes = []string{}
	}
	if m.Comments == nil {
		m.Comments = []models.Comment{}
	}
	return &m, nil
}

// markerArgs returns the column values for m in markerColumns order
func markerArgs(m *models.Marker) ([]interface{}, error) {
	var repEarned, breakdown, distance, migratedAt interface{}
	if m.RepEarned != nil {
		repEarned = *m.RepEarned
	}
	if m.RepBreakdown != nil {
		b, err := json.Marshal(m.RepBreakdown)
		if err != nil {
			return nil, err
		}
		breakdown = string(b)
	}
	if m.DistanceFromCenter != nil {
		distance = *m.DistanceFromCenter
	}
	if m.MigratedAt != nil {
		migratedAt = *m.MigratedAt
	}

	likes := m.Likes
	if likes == nil {
		likes = []string{}
	}
	comments := m.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	likesJSON, err := json.Marshal(likes)
	if err != nil {
		return nil, err
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		m.ID, m.UserID, m.Position.Lat, m.Position.Lng, m.Name, m.Description,
		string(m.Surface), string(m.GraffitiType), repEarned, breakdown, distance,
		string(likesJSON), string(commentsJSON), m.IsEdited, migratedAt,
		m.CreatedAt, m.UpdatedAt,
	}, nil
}

const upsertMarker = `INSERT OR REPLACE INTO markers (` + markerColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// --- Markers ---

// CreateMarker stores a new marker. An empty ID is filled with a UUID and
// zero timestamps with the current time.
func (s *Store) CreateMarker(m *models.Marker) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}

	args, err := markerArgs(m)
	if err != nil {
		return fmt.Errorf("encode marker: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO markers (`+markerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("insert marker: %w", err)
	}
	return nil
}

// GetMarker returns a marker by ID, or nil if it does not exist
func (s *Store) GetMarker(id string) (*models.Marker, error) {
	m, err := scanMarker(s.db.QueryRow(`SELECT `+markerColumns+` FROM markers WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMarkers returns markers ordered by creation time, optionally
// filtered by owner
func (s *Store) ListMarkers(userID string) ([]models.Marker, error) {
	var rows *sql.Rows
	var err error

	if userID != "" {
		rows, err = s.db.Query(`SELECT `+markerColumns+`
			FROM markers WHERE user_id = ? ORDER BY created_at, id`, userID)
	} else {
		rows, err = s.db.Query(`SELECT ` + markerColumns + `
			FROM markers ORDER BY created_at, id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	markers := []models.Marker{}
	for rows.Next() {
		m, err := scanMarker(rows)
		if err != nil {
			return nil, err
		}
		markers = append(markers, *m)
	}
	return markers, rows.Err()
}

// UpdateMarker overwrites an existing marker
func (s *Store) UpdateMarker(m *models.Marker) error {
	existing, err := s.GetMarker(m.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	args, err := markerArgs(m)
	if err != nil {
		return fmt.Errorf("encode marker: %w", err)
	}
	if _, err := s.db.Exec(upsertMarker, args...); err != nil {
		return fmt.Errorf("update marker: %w", err)
	}
	return nil
}

// SaveMarkers upserts multiple markers in a transaction
func (s *Store) SaveMarkers(markers []models.Marker) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertMarker)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range markers {
		args, err := markerArgs(&markers[i])
		if err != nil {
			return fmt.Errorf("encode marker %s: %w", markers[i].ID, err)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("save marker %s: %w", markers[i].ID, err)
		}
	}

	return tx.Commit()
}

// DeleteMarker removes a marker
func (s *Store) DeleteMarker(id string) error {
	res, err := s.db.Exec(`DELETE FROM markers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Social ---

// AddLike records userID as liking a marker. Liking twice is a no-op.
func (s *Store) AddLike(markerID, userID string) (*models.Marker, error) {
	return s.modify(markerID, func(m *models.Marker) {
		for _, id := range m.Likes {
			if id == userID {
				return
			}
		}
		m.Likes = append(m.Likes, userID)
	})
}

// RemoveLike removes userID from a marker's likes
func (s *Store) RemoveLike(markerID, userID string) (*models.Marker, error) {
	return s.modify(markerID, func(m *models.Marker) {
		likes := m.Likes[:0]
		for _, id := range m.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		m.Likes = likes
	})
}

// AddComment appends a comment to a marker
func (s *Store) AddComment(markerID string, c models.CommentCreate) (*models.Comment, error) {
	comment := models.Comment{
		ID:        uuid.New().String(),
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.modify(markerID, func(m *models.Marker) {
		m.Comments = append(m.Comments, comment)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// modify applies fn to a marker inside a transaction. Social updates do not
// touch updated_at, which tracks edits to the drop itself.
func (s *Store) modify(markerID string, fn func(*models.Marker)) (*models.Marker, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	m, err := scanMarker(tx.QueryRow(`SELECT `+markerColumns+` FROM markers WHERE id = ?`, markerID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	fn(m)

	args, err := markerArgs(m)
	if err != nil {
		return nil, fmt.Errorf("encode marker: %w", err)
	}
	if _, err := tx.Exec(upsertMarker, args...); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return m, nil
}

// --- Progress ---

// UserRep returns the total REP and marker count for a user
func (s *Store) UserRep(userID string) (total int, count int, err error) {
	err = s.db.QueryRow(`
		SELECT COALESCE(SUM(rep_earned), 0), COUNT(*)
		FROM markers WHERE user_id = ?
	`, userID).Scan(&total, &count)
	return total, count, err
}
