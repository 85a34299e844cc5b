package inquiry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wassat/website/internal/db"
	"github.com/wassat/website/internal/i18n"
)

// Store persists inquiries.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Create inserts in and returns it with its ID and creation time set.
func (s *Store) Create(ctx context.Context, in Inquiry) (Inquiry, error) {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = s.now().UTC().Truncate(time.Second)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, created_at, lang, name, email, subject, message, remote_addr)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID,
		in.CreatedAt.Format(time.DateTime),
		string(in.Language),
		in.Name,
		in.Email,
		in.Subject,
		in.Message,
		in.RemoteAddr,
	)
	if err != nil {
		return Inquiry{}, fmt.Errorf("inserting inquiry: %w", err)
	}
	return in, nil
}

// ListFilter controls which inquiries List returns.
type ListFilter struct {
	Since  *time.Time
	Limit  int
	Offset int
}

// List returns inquiries newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Inquiry, error) {
	query := `SELECT id, created_at, lang, name, email, subject, message, remote_addr FROM inquiries`
	var args []any
	if filter.Since != nil {
		query += " WHERE created_at >= ?"
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}
	query += " ORDER BY created_at DESC, id"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		var (
			in   Inquiry
			ts   string
			lang string
		)
		if err := rows.Scan(&in.ID, &ts, &lang, &in.Name, &in.Email, &in.Subject, &in.Message, &in.RemoteAddr); err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}
		in.Language = i18n.Language(lang)
		in.CreatedAt = parseTimestamp(ts)
		out = append(out, in)
	}
	return out, rows.Err()
}

// Count returns the number of stored inquiries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting inquiries: %w", err)
	}
	return n, nil
}

func parseTimestamp(ts string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}
