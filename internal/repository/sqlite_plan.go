package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timeplan/internal/db"
	"github.com/alexanderramin/timeplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

var _ PlanRepo = (*SQLitePlanRepo)(nil)

// Save inserts a plan, or replaces the stored document when the name is
// already taken.
func (r *SQLitePlanRepo) Save(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, name, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Document),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	query := `SELECT id, name, document, created_at, updated_at FROM plans WHERE name = ?`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, name))
}

// List returns every stored plan, oldest first, without document bodies.
func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT id, name, created_at, updated_at FROM plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		var (
			p                    domain.Plan
			createdAt, updatedAt string
		)
		if err := rows.Scan(&p.ID, &p.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		if err := parsePlanTimes(&p, createdAt, updatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var (
		p                    domain.Plan
		document             string
		createdAt, updatedAt string
	)
	err := row.Scan(&p.ID, &p.Name, &document, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.Document = []byte(document)
	if err := parsePlanTimes(&p, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func parsePlanTimes(p *domain.Plan, createdAt, updatedAt string) error {
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
