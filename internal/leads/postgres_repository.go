package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// db is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type db interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores captured leads in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO leads (id, session_id, name, phone, email, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.SessionID,
		req.Name,
		req.Phone,
		req.Email,
		req.Source,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:        id.String(),
		SessionID: req.SessionID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Source:    req.Source,
		CreatedAt: createdAt,
	}, nil
}

// GetByID fetches a single lead.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `
		SELECT id, session_id, name, phone, email, source, created_at
		FROM leads
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var lead Lead
	if err := row.Scan(
		&lead.ID,
		&lead.SessionID,
		&lead.Name,
		&lead.Phone,
		&lead.Email,
		&lead.Source,
		&lead.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	return &lead, nil
}

// List returns captured leads newest first.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, session_id, name, phone, email, source, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	leads := make([]*Lead, 0, limit)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.SessionID,
			&lead.Name,
			&lead.Phone,
			&lead.Email,
			&lead.Source,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: iterate failed: %w", err)
	}
	return leads, nil
}
