package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Archive is a derived, searchable copy of preserved items kept in sqlite
// alongside the JSON records. It only backs the `search` command; the JSON
// files stay authoritative, and archive failures never fail a preservation.
type Archive struct {
	db *sql.DB
}

func OpenArchive(workDir string) (*Archive, error) {
	dir := filepath.Join(workDir, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s dir: %w", DirName, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "archive.db"))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		category   TEXT NOT NULL,
		content    TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_items_session ON items(session_id);
	`
	_, err := a.db.Exec(schema)
	return err
}

// AddItems appends one row per preserved item.
func (a *Archive) AddItems(sessionID string, items []ContextItem) error {
	now := time.Now().UTC()
	for _, it := range items {
		_, err := a.db.Exec(
			"INSERT INTO items (session_id, category, content, role, created_at) VALUES (?, ?, ?, ?, ?)",
			sessionID, string(it.Category), it.Content, it.Role, now,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}
	return nil
}

type ArchivedItem struct {
	ID        int64
	SessionID string
	Category  Category
	Content   string
	Role      string
	CreatedAt time.Time
}

// Search returns items whose content contains the query, newest first.
func (a *Archive) Search(query string, limit int) ([]ArchivedItem, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := a.db.Query(
		`SELECT id, session_id, category, content, role, created_at
		 FROM items
		 WHERE content LIKE '%' || ? || '%'
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ArchivedItem
	for rows.Next() {
		var it ArchivedItem
		if err := rows.Scan(&it.ID, &it.SessionID, &it.Category, &it.Content, &it.Role, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (a *Archive) CountItems() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	return count, err
}
