// Package storage provides a SQLite-backed word bank for categories and
// their accepted answers. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/text-or-die/internal/config"
	"github.com/vovakirdan/text-or-die/internal/words"
)

// Store manages the SQLite word bank. It implements words.Provider.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

var _ words.Provider = (*Store)(nil)

// CategoryStat describes one stored category.
type CategoryStat struct {
	Category  words.Category
	Words     int
	UpdatedAt time.Time
}

// ImportResult summarizes an import.
type ImportResult struct {
	Categories int // Categories created or updated
	Added      int // Words that were not stored before
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}

	dbPath = config.ExpandHome(dbPath)

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			key TEXT PRIMARY KEY,
			prompt TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS words (
			category_key TEXT NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (category_key, word)
		);
		CREATE INDEX IF NOT EXISTS idx_words_category ON words(category_key);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportPack stores every category of p, merging with what is already
// there. A category without a prompt keeps its stored prompt.
func (s *Store) ImportPack(p words.Pack) (ImportResult, error) {
	var res ImportResult

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, pc := range p.Categories {
		key := words.Normalize(pc.Key)
		if key == "" {
			continue
		}

		_, err := tx.Exec(
			`INSERT INTO categories (key, prompt) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET
			   prompt = CASE WHEN excluded.prompt != '' THEN excluded.prompt ELSE categories.prompt END,
			   updated_at = CURRENT_TIMESTAMP`,
			key, pc.Prompt,
		)
		if err != nil {
			return res, fmt.Errorf("storage: cannot save category %s: %w", key, err)
		}
		res.Categories++

		for _, w := range pc.Words {
			w = words.Normalize(w)
			if w == "" {
				continue
			}
			r, err := tx.Exec(
				"INSERT OR IGNORE INTO words (category_key, word) VALUES (?, ?)",
				key, w,
			)
			if err != nil {
				return res, fmt.Errorf("storage: cannot save word %q: %w", w, err)
			}
			if n, err := r.RowsAffected(); err == nil {
				res.Added += int(n)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return res, nil
}

// RemoveCategory deletes a category and all of its words.
func (s *Store) RemoveCategory(key string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	r, err := tx.Exec("DELETE FROM categories WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot delete category: %w", err)
	}
	if n, _ := r.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: %q: %w", key, words.ErrUnknownCategory)
	}
	if _, err := tx.Exec("DELETE FROM words WHERE category_key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// Stats lists every category with its word count, ordered by key.
func (s *Store) Stats() ([]CategoryStat, error) {
	rows, err := s.db.Query(
		`SELECT c.key, c.prompt, c.updated_at, COUNT(w.word)
		 FROM categories c
		 LEFT JOIN words w ON w.category_key = c.key
		 GROUP BY c.key
		 ORDER BY c.key`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query categories: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStat
	for rows.Next() {
		var st CategoryStat
		var updatedAt any
		if err := rows.Scan(&st.Category.Key, &st.Category.Prompt, &updatedAt, &st.Words); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if st.Category.Prompt == "" {
			st.Category.Prompt = words.DefaultPrompt(st.Category.Key)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			st.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.UpdatedAt = parsed
			}
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// WordList returns the words of a category in alphabetical order.
func (s *Store) WordList(key string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT word FROM words WHERE category_key = ? ORDER BY word",
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		list = append(list, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return list, nil
}

// Categories implements words.Provider. Query failures are logged and
// yield no categories.
func (s *Store) Categories() []words.Category {
	stats, err := s.Stats()
	if err != nil {
		s.logger.Error("word bank unavailable", "err", err)
		return nil
	}

	out := make([]words.Category, 0, len(stats))
	for _, st := range stats {
		out = append(out, st.Category)
	}
	return out
}

// Words implements words.Provider. Query failures are logged and yield an
// empty set.
func (s *Store) Words(key string) words.Set {
	list, err := s.WordList(key)
	if err != nil {
		s.logger.Error("word bank unavailable", "category", key, "err", err)
		return words.NewSet()
	}
	return words.NewSet(list...)
}

// Catalog copies the whole word bank into memory.
func (s *Store) Catalog() (*words.Catalog, error) {
	stats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	c := words.NewCatalog()
	for _, st := range stats {
		list, err := s.WordList(st.Category.Key)
		if err != nil {
			return nil, err
		}
		c.Add(st.Category, list)
	}
	return c, nil
}
