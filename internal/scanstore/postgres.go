package scanstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/hardgate/scanengine/internal/model"
)

// Postgres is a Store backed by a scan_records table, serializing the whole
// record as JSON over a pooled *sql.DB the way qlp-hq-QLP's database
// package does. It requires a live connection: NewPostgres fails when the
// database cannot be pinged.
type Postgres struct {
	conn *sql.DB
}

// NewPostgres opens dbURL and configures the same pool bounds as
// database.New (25 open / 5 idle / 1h lifetime), then ensures the backing
// table exists.
func NewPostgres(dbURL string) (*Postgres, error) {
	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS scan_records (
			scan_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			payload JSONB NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("create scan_records table: %w", err)
	}

	return &Postgres{conn: conn}, nil
}

func (p *Postgres) Close() error { return p.conn.Close() }

func (p *Postgres) Create(ctx context.Context, rec *model.ScanRecord) error {
	return p.upsert(ctx, rec)
}

func (p *Postgres) Update(ctx context.Context, rec *model.ScanRecord) error {
	return p.upsert(ctx, rec)
}

func (p *Postgres) upsert(ctx context.Context, rec *model.ScanRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal scan record: %w", err)
	}
	_, err = p.conn.ExecContext(ctx, `
		INSERT INTO scan_records (scan_id, status, updated_at, payload)
		VALUES ($1, $2, now(), $3)
		ON CONFLICT (scan_id) DO UPDATE SET status = $2, updated_at = now(), payload = $3
	`, rec.ScanID, string(rec.Status), payload)
	if err != nil {
		return fmt.Errorf("upsert scan record: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, scanID string) (*model.ScanRecord, bool, error) {
	var payload []byte
	err := p.conn.QueryRowContext(ctx, `SELECT payload FROM scan_records WHERE scan_id = $1`, scanID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select scan record: %w", err)
	}

	var rec model.ScanRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal scan record: %w", err)
	}
	return &rec, true, nil
}

func (p *Postgres) List(ctx context.Context) ([]*model.ScanRecord, error) {
	rows, err := p.conn.QueryContext(ctx, `SELECT payload FROM scan_records ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list scan records: %w", err)
	}
	defer rows.Close()

	var out []*model.ScanRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var rec model.ScanRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			continue
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
