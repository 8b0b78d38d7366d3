// Package sql provides SQL-based store implementations for MySQL, PostgreSQL, and TiDB.
package sql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/store"
	"github.com/gospelwave/moderation/utils"
)

// Dialect represents the SQL dialect.
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectTiDB     Dialect = "tidb"
)

// Config holds the configuration for SQL store.
type Config struct {
	Dialect         Dialect
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns the default SQL store configuration.
func DefaultConfig() Config {
	return Config{
		Dialect:         DialectMySQL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Store implements the store.Store interface using a SQL database.
type Store struct {
	db      *sql.DB
	dialect Dialect
	idGen   *utils.IDGenerator
}

// rebind converts MySQL-style placeholders (?) to the appropriate format for the dialect.
// For PostgreSQL, converts ? to $1, $2, etc. For MySQL/TiDB, returns the query unchanged.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var result []byte
	paramIndex := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, []byte(fmt.Sprintf("%d", paramIndex))...)
			paramIndex++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}

// New creates a new SQL store.
func New(cfg Config) (*Store, error) {
	db, err := sql.Open(string(cfg.Dialect), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:      db,
		dialect: cfg.Dialect,
		idGen:   utils.NewIDGenerator(),
	}, nil
}

// NewWithDB creates a new SQL store with an existing database connection.
func NewWithDB(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		idGen:   utils.NewIDGenerator(),
	}
}

// CreateReview creates a new review record for an upload.
func (s *Store) CreateReview(ctx context.Context, upload moderation.UploadContext, contentType moderation.ContentType, contentHash string) (string, error) {
	id := s.idGen.Generate()
	now := time.Now().UnixMilli()

	query := s.rebind(`INSERT INTO upload_review (id, upload_id, submitter_id, trace_id, content_type, content_hash, decision, status, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := s.db.ExecContext(ctx, query,
		id, upload.UploadID, upload.SubmitterID, upload.TraceID, contentType, contentHash,
		moderation.DecisionPending, moderation.StatusPending, now, now)
	if err != nil {
		return "", moderation.NewStoreError("create", "upload_review", err)
	}

	return id, nil
}

// GetReview gets a review by ID.
func (s *Store) GetReview(ctx context.Context, reviewID string) (*moderation.Review, error) {
	query := s.rebind(`SELECT id, upload_id, submitter_id, trace_id, content_type, content_hash, decision, status, language, confidence, flags_json, outcome_json, created_at, updated_at
              FROM upload_review WHERE id = ?`)

	return s.scanReview(s.db.QueryRowContext(ctx, query, reviewID))
}

// FindReviewByContentHash finds the most recent review for a content hash.
// Returns (nil, nil) when no review exists.
func (s *Store) FindReviewByContentHash(ctx context.Context, contentHash string) (*moderation.Review, error) {
	query := s.rebind(`SELECT id, upload_id, submitter_id, trace_id, content_type, content_hash, decision, status, language, confidence, flags_json, outcome_json, created_at, updated_at
              FROM upload_review WHERE content_hash = ? ORDER BY created_at DESC LIMIT 1`)

	review, err := s.scanReview(s.db.QueryRowContext(ctx, query, contentHash))
	if err == moderation.ErrReviewNotFound {
		return nil, nil
	}
	return review, err
}

func (s *Store) scanReview(row *sql.Row) (*moderation.Review, error) {
	var r moderation.Review
	var language, flagsJSON, outcomeJSON sql.NullString
	err := row.Scan(
		&r.ID, &r.UploadID, &r.SubmitterID, &r.TraceID, &r.ContentType, &r.ContentHash,
		&r.Decision, &r.Status, &language, &r.Confidence, &flagsJSON, &outcomeJSON,
		&r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, moderation.ErrReviewNotFound
	}
	if err != nil {
		return nil, moderation.NewStoreError("get", "upload_review", err)
	}
	r.Language = language.String
	r.FlagsJSON = flagsJSON.String
	r.OutcomeJSON = outcomeJSON.String

	return &r, nil
}

// UpdateDecision updates the decision for a review. Returns whether the
// stored decision changed.
func (s *Store) UpdateDecision(ctx context.Context, reviewID string, decision moderation.Decision) (bool, error) {
	now := time.Now().UnixMilli()

	query := s.rebind(`UPDATE upload_review SET decision = ?, updated_at = ? WHERE id = ? AND decision != ?`)
	result, err := s.db.ExecContext(ctx, query, decision, now, reviewID, decision)
	if err != nil {
		return false, moderation.NewStoreError("update", "upload_review", err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// UpdateStatus updates the status for a review.
func (s *Store) UpdateStatus(ctx context.Context, reviewID string, status moderation.ReviewStatus) error {
	now := time.Now().UnixMilli()

	query := s.rebind(`UPDATE upload_review SET status = ?, updated_at = ? WHERE id = ?`)
	_, err := s.db.ExecContext(ctx, query, status, now, reviewID)
	if err != nil {
		return moderation.NewStoreError("update", "upload_review", err)
	}

	return nil
}

// UpdateOutcome records the merged outcome for a review.
func (s *Store) UpdateOutcome(ctx context.Context, reviewID string, outcome moderation.Outcome) error {
	now := time.Now().UnixMilli()

	flagsJSON, err := json.Marshal(outcome.Flags)
	if err != nil {
		return fmt.Errorf("failed to marshal flags: %w", err)
	}
	outcomeJSON, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	query := s.rebind(`UPDATE upload_review SET decision = ?, language = ?, confidence = ?, flags_json = ?, outcome_json = ?, updated_at = ? WHERE id = ?`)
	_, err = s.db.ExecContext(ctx, query,
		outcome.Decision, outcome.Language, outcome.Confidence,
		string(flagsJSON), string(outcomeJSON), now, reviewID)
	if err != nil {
		return moderation.NewStoreError("update", "upload_review", err)
	}

	return nil
}

// EnqueueForReview inserts an entry into the human review queue.
func (s *Store) EnqueueForReview(ctx context.Context, entry moderation.QueueEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = s.idGen.Generate()
	}
	now := time.Now().UnixMilli()

	query := s.rebind(`INSERT INTO review_queue (id, review_id, upload_id, text, decision, confidence, flags_json, claimed, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.ReviewID, entry.UploadID, entry.Text, entry.Decision,
		entry.Confidence, entry.FlagsJSON, false, now)
	if err != nil {
		return "", moderation.NewStoreError("create", "review_queue", err)
	}

	return entry.ID, nil
}

// ListQueue lists unclaimed queue entries, oldest first.
func (s *Store) ListQueue(ctx context.Context, limit int) ([]moderation.QueueEntry, error) {
	query := s.rebind(`SELECT id, review_id, upload_id, text, decision, confidence, flags_json, claimed, created_at
              FROM review_queue WHERE claimed = 0 ORDER BY created_at ASC LIMIT ?`)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, moderation.NewStoreError("list", "review_queue", err)
	}
	defer rows.Close()

	var entries []moderation.QueueEntry
	for rows.Next() {
		var e moderation.QueueEntry
		var flagsJSON sql.NullString
		if err := rows.Scan(&e.ID, &e.ReviewID, &e.UploadID, &e.Text, &e.Decision,
			&e.Confidence, &flagsJSON, &e.Claimed, &e.CreatedAt); err != nil {
			return nil, moderation.NewStoreError("scan", "review_queue", err)
		}
		e.FlagsJSON = flagsJSON.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ClaimQueueEntry marks a queue entry as claimed by a reviewer. Returns
// false if the entry was already claimed.
func (s *Store) ClaimQueueEntry(ctx context.Context, entryID string) (bool, error) {
	query := s.rebind(`UPDATE review_queue SET claimed = 1 WHERE id = ? AND claimed = 0`)
	result, err := s.db.ExecContext(ctx, query, entryID)
	if err != nil {
		return false, moderation.NewStoreError("update", "review_queue", err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// Now returns the current time.
func (s *Store) Now() time.Time {
	return time.Now()
}

// WithTx executes a function within a transaction.
func (s *Store) WithTx(ctx context.Context, fn func(store.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &txStore{
		Store: s,
		tx:    tx,
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// txStore wraps Store for transaction support.
type txStore struct {
	*Store
	tx *sql.Tx
}
