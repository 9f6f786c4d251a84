package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Attempt sources.
const (
	SourceTerminal = "terminal"
	SourceTelegram = "telegram"
)

// Attempt is one scored quiz submission.
type Attempt struct {
	ID        string
	Language  string
	Score     int
	Total     int
	Source    string
	CreatedAt time.Time
}

// LanguageSummary aggregates attempts for one language.
type LanguageSummary struct {
	Language string
	Attempts int
	Best     int
	Total    int
	Last     time.Time
}

// AttemptRepo records quiz submissions.
type AttemptRepo struct {
	db *sql.DB
}

// Record stores a. Missing ID and CreatedAt are filled in.
func (r *AttemptRepo) Record(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Source == "" {
		a.Source = SourceTerminal
	}

	query, args := builder().
		Insert("quiz_attempts").
		Columns("id", "language", "score", "total", "source", "created_at").
		Values(a.ID, a.Language, a.Score, a.Total, a.Source, a.CreatedAt.UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns the newest attempts first. limit <= 0 means no limit.
func (r *AttemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	sel := builder().
		Select("id", "language", "score", "total", "source", "created_at").
		From(entsql.Table("quiz_attempts")).
		OrderBy(entsql.Desc("created_at"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var created int64
		if err := rows.Scan(&a.ID, &a.Language, &a.Score, &a.Total, &a.Source, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt = time.UnixMilli(created)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Summary returns per-language aggregates ordered by language name.
func (r *AttemptRepo) Summary(ctx context.Context) ([]LanguageSummary, error) {
	query, args := builder().
		Select(
			"language",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Max("score"), "best"),
			entsql.As(entsql.Max("total"), "total"),
			entsql.As(entsql.Max("created_at"), "last"),
		).
		From(entsql.Table("quiz_attempts")).
		GroupBy("language").
		OrderBy("language").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempt summary: %w", err)
	}
	defer rows.Close()

	var out []LanguageSummary
	for rows.Next() {
		var s LanguageSummary
		var last int64
		if err := rows.Scan(&s.Language, &s.Attempts, &s.Best, &s.Total, &last); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		s.Last = time.UnixMilli(last)
		out = append(out, s)
	}
	return out, rows.Err()
}
