package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/varunbhx/coachdesk/internal/notify"
)

// NewDBConnection opens the Postgres pool used by the change journal and
// verifies it with a ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// ChangeJournal appends every change notification to a Postgres table.
// The canonical data stays in volatile memory; this journal is the
// replaceable external record of what happened, nothing reads back from it.
type ChangeJournal struct {
	DB *sql.DB
}

func NewChangeJournal(db *sql.DB) *ChangeJournal {
	return &ChangeJournal{DB: db}
}

func (j *ChangeJournal) EnsureSchema(ctx context.Context) error {
	_, err := j.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS entity_changes (
			event_id    TEXT PRIMARY KEY,
			kind        TEXT NOT NULL,
			action      TEXT NOT NULL,
			entity_id   BIGINT NOT NULL,
			occurred_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (j *ChangeJournal) EntityChanged(evt notify.ChangeEvent) {
	query := `
		INSERT INTO entity_changes (event_id, kind, action, entity_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := j.DB.ExecContext(ctx, query,
		evt.EventID,
		string(evt.Kind),
		string(evt.Action),
		evt.EntityID,
		evt.OccurredAt,
	)
	if err != nil {
		log.Printf("change journal insert for %s failed: %v", evt.EventID, err)
	}
}

func (j *ChangeJournal) MetricsStale() {}
